package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fitgrid/gym-system/internal/core/domain"
	"github.com/fitgrid/gym-system/internal/core/ports"
)

type stubCoachRepo struct {
	coaches map[string]*domain.Coach
	seq     int
}

func newStubCoachRepo() *stubCoachRepo {
	return &stubCoachRepo{coaches: make(map[string]*domain.Coach)}
}

func cloneCoach(c *domain.Coach) *domain.Coach {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubCoachRepo) List(_ context.Context) ([]*domain.Coach, error) {
	out := make([]*domain.Coach, 0, len(r.coaches))
	for _, c := range r.coaches {
		out = append(out, cloneCoach(c))
	}
	return out, nil
}

func (r *stubCoachRepo) FindByID(_ context.Context, id string) (*domain.Coach, error) {
	if c, ok := r.coaches[id]; ok {
		return cloneCoach(c), nil
	}
	return nil, domain.ErrCoachNotFound
}

func (r *stubCoachRepo) Create(_ context.Context, coach *domain.Coach) (*domain.Coach, error) {
	r.seq++
	copy := cloneCoach(coach)
	copy.ID = fmt.Sprintf("coach_%d", r.seq)
	r.coaches[copy.ID] = cloneCoach(copy)
	return cloneCoach(copy), nil
}

func (r *stubCoachRepo) Replace(_ context.Context, coach *domain.Coach) error {
	if _, ok := r.coaches[coach.ID]; !ok {
		return domain.ErrCoachNotFound
	}
	r.coaches[coach.ID] = cloneCoach(coach)
	return nil
}

func (r *stubCoachRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.coaches[id]; !ok {
		return false, nil
	}
	delete(r.coaches, id)
	return true, nil
}

func (r *stubCoachRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.coaches)), nil
}

func TestCoachService_Create(t *testing.T) {
	repo := newStubCoachRepo()
	svc := NewCoachService(repo, newStubUserRepo(), zerolog.Nop())

	coach, err := svc.Create(context.Background(), ports.CreateCoachInput{
		Name:           "Pat",
		Email:          "pat@example.com",
		Phone:          "555-0200",
		Specialization: "CrossFit",
		Experience:     5,
		Salary:         42000,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if coach.Status != "active" {
		t.Fatalf("expected active status, got %s", coach.Status)
	}
	if coach.ID == "" {
		t.Fatalf("expected assigned id")
	}
}

func TestCoachService_Create_ProvisionsAccount(t *testing.T) {
	users := newStubUserRepo()
	svc := NewCoachService(newStubCoachRepo(), users, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateCoachInput{
		Name:           "Quinn",
		Email:          "quinn@example.com",
		Phone:          "555-0201",
		Specialization: "Yoga",
		Password:       "coachpass",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	account, err := users.FindByEmail(context.Background(), "quinn@example.com")
	if err != nil {
		t.Fatalf("expected a provisioned account: %v", err)
	}
	if account.Role != domain.RoleCoach {
		t.Fatalf("expected coach role, got %s", account.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("coachpass")); err != nil {
		t.Fatalf("account password hash does not verify: %v", err)
	}
}

func TestCoachService_Create_NoPasswordNoAccount(t *testing.T) {
	users := newStubUserRepo()
	svc := NewCoachService(newStubCoachRepo(), users, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateCoachInput{
		Name:  "Ray",
		Email: "ray@example.com",
		Phone: "555-0202",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := users.FindByEmail(context.Background(), "ray@example.com"); err != domain.ErrUserNotFound {
		t.Fatalf("no account expected without a password, got %v", err)
	}
}

func TestCoachService_Update(t *testing.T) {
	repo := newStubCoachRepo()
	svc := NewCoachService(repo, newStubUserRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateCoachInput{
		Name:           "Sam",
		Email:          "sam@example.com",
		Phone:          "555-0203",
		Specialization: "Boxing",
		Experience:     3,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateCoachInput{
		Name:           "Sam",
		Email:          "sam@example.com",
		Phone:          "555-0299",
		Specialization: "Kickboxing",
		Experience:     4,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Specialization != "Kickboxing" || updated.Experience != 4 {
		t.Fatalf("fields not updated: %+v", updated)
	}
	if updated.Status != "active" {
		t.Fatalf("empty status should keep the stored value, got %s", updated.Status)
	}
}

func TestCoachService_Update_NotFound(t *testing.T) {
	svc := NewCoachService(newStubCoachRepo(), newStubUserRepo(), zerolog.Nop())

	if _, err := svc.Update(context.Background(), "missing", ports.UpdateCoachInput{Name: "X"}); err != domain.ErrCoachNotFound {
		t.Fatalf("expected ErrCoachNotFound, got %v", err)
	}
}
