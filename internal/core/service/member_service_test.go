package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fitgrid/gym-system/internal/core/domain"
	"github.com/fitgrid/gym-system/internal/core/ports"
)

type stubMemberRepo struct {
	members map[string]*domain.Member
	seq     int
}

func newStubMemberRepo() *stubMemberRepo {
	return &stubMemberRepo{members: make(map[string]*domain.Member)}
}

func cloneMember(m *domain.Member) *domain.Member {
	if m == nil {
		return nil
	}
	clone := *m
	return &clone
}

func (r *stubMemberRepo) List(_ context.Context) ([]*domain.Member, error) {
	out := make([]*domain.Member, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, cloneMember(m))
	}
	return out, nil
}

func (r *stubMemberRepo) FindByID(_ context.Context, id string) (*domain.Member, error) {
	if m, ok := r.members[id]; ok {
		return cloneMember(m), nil
	}
	return nil, domain.ErrMemberNotFound
}

func (r *stubMemberRepo) Create(_ context.Context, member *domain.Member) (*domain.Member, error) {
	r.seq++
	copy := cloneMember(member)
	copy.ID = fmt.Sprintf("member_%d", r.seq)
	r.members[copy.ID] = cloneMember(copy)
	return cloneMember(copy), nil
}

func (r *stubMemberRepo) Replace(_ context.Context, member *domain.Member) error {
	if _, ok := r.members[member.ID]; !ok {
		return domain.ErrMemberNotFound
	}
	r.members[member.ID] = cloneMember(member)
	return nil
}

func (r *stubMemberRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.members[id]; !ok {
		return false, nil
	}
	delete(r.members, id)
	return true, nil
}

func (r *stubMemberRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.members)), nil
}

func (r *stubMemberRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var n int64
	for _, m := range r.members {
		if m.Status == status {
			n++
		}
	}
	return n, nil
}

func newMemberService(members *stubMemberRepo, users *stubUserRepo) *MemberService {
	return NewMemberService(members, users, zerolog.Nop())
}

func TestMemberService_Create_TrialPlan(t *testing.T) {
	svc := newMemberService(newStubMemberRepo(), newStubUserRepo())

	before := time.Now().UTC()
	member, err := svc.Create(context.Background(), ports.CreateMemberInput{
		Name:           "Alice",
		Email:          "alice@example.com",
		Phone:          "555-0100",
		MembershipType: "Trial",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if !member.IsTrial {
		t.Fatalf("expected trial flag")
	}
	if member.Status != domain.MemberStatusActive {
		t.Fatalf("expected active status, got %s", member.Status)
	}
	if member.ExpirationDate == nil {
		t.Fatalf("expected expiration date")
	}
	got := member.ExpirationDate.Sub(before)
	if got < 23*time.Hour || got > 25*time.Hour {
		t.Fatalf("trial expiration should be about one day out, got %v", got)
	}
}

func TestMemberService_Create_PlanTerms(t *testing.T) {
	cases := []struct {
		plan string
		days int
	}{
		{"Monthly", 30},
		{"monthly", 30},
		{"Annual", 365},
		{"ANNUAL", 365},
	}

	for _, tc := range cases {
		svc := newMemberService(newStubMemberRepo(), newStubUserRepo())
		before := time.Now().UTC()
		member, err := svc.Create(context.Background(), ports.CreateMemberInput{
			Name:           "Bob",
			Email:          "bob@example.com",
			Phone:          "555-0101",
			MembershipType: tc.plan,
		})
		if err != nil {
			t.Fatalf("Create(%s) returned error: %v", tc.plan, err)
		}
		if member.IsTrial {
			t.Fatalf("plan %s should not be trial", tc.plan)
		}
		if member.ExpirationDate == nil {
			t.Fatalf("plan %s should derive an expiration", tc.plan)
		}
		want := time.Duration(tc.days) * 24 * time.Hour
		got := member.ExpirationDate.Sub(before)
		if got < want-time.Hour || got > want+time.Hour {
			t.Fatalf("plan %s expiration: want about %v, got %v", tc.plan, want, got)
		}
	}
}

func TestMemberService_Create_UnknownPlan(t *testing.T) {
	svc := newMemberService(newStubMemberRepo(), newStubUserRepo())

	member, err := svc.Create(context.Background(), ports.CreateMemberInput{
		Name:           "Carol",
		Email:          "carol@example.com",
		Phone:          "555-0102",
		MembershipType: "Corporate",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if member.ExpirationDate != nil {
		t.Fatalf("unknown plan should not derive an expiration")
	}
	if member.Status != domain.MemberStatusActive {
		t.Fatalf("expected active status, got %s", member.Status)
	}
}

func TestMemberService_Create_MissingFields(t *testing.T) {
	svc := newMemberService(newStubMemberRepo(), newStubUserRepo())

	_, err := svc.Create(context.Background(), ports.CreateMemberInput{Name: "Dan"})
	if err != domain.ErrMissingMemberFields {
		t.Fatalf("expected ErrMissingMemberFields, got %v", err)
	}
}

func TestMemberService_Create_ProvisionsAccount(t *testing.T) {
	users := newStubUserRepo()
	svc := newMemberService(newStubMemberRepo(), users)

	_, err := svc.Create(context.Background(), ports.CreateMemberInput{
		Name:           "Erin",
		Email:          "erin@example.com",
		Phone:          "555-0103",
		MembershipType: "Monthly",
		Password:       "gympass",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	account, err := users.FindByEmail(context.Background(), "erin@example.com")
	if err != nil {
		t.Fatalf("expected a provisioned account: %v", err)
	}
	if account.Role != domain.RoleMember {
		t.Fatalf("expected member role, got %s", account.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("gympass")); err != nil {
		t.Fatalf("account password hash does not verify: %v", err)
	}
}

func TestMemberService_Create_TrialSkipsAccount(t *testing.T) {
	users := newStubUserRepo()
	svc := newMemberService(newStubMemberRepo(), users)

	_, err := svc.Create(context.Background(), ports.CreateMemberInput{
		Name:           "Fay",
		Email:          "fay@example.com",
		Phone:          "555-0104",
		MembershipType: "Trial",
		Password:       "gympass",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := users.FindByEmail(context.Background(), "fay@example.com"); err != domain.ErrUserNotFound {
		t.Fatalf("trial members should not get an account, got %v", err)
	}
}

func TestMemberService_Update_PartialMerge(t *testing.T) {
	repo := newStubMemberRepo()
	svc := newMemberService(repo, newStubUserRepo())

	created, err := svc.Create(context.Background(), ports.CreateMemberInput{
		Name:           "Gil",
		Email:          "gil@example.com",
		Phone:          "555-0105",
		MembershipType: "Monthly",
		Address:        "1 Main St",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateMemberInput{
		Phone: "555-0199",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Phone != "555-0199" {
		t.Fatalf("phone not updated")
	}
	if updated.Name != "Gil" || updated.Email != "gil@example.com" {
		t.Fatalf("unrelated fields should be preserved")
	}
	if updated.Address != "1 Main St" {
		t.Fatalf("nil address pointer should leave the stored value alone")
	}
	if updated.MembershipType != "Monthly" {
		t.Fatalf("membership type should be preserved")
	}
}

func TestMemberService_Update_ClearsNullableField(t *testing.T) {
	repo := newStubMemberRepo()
	svc := newMemberService(repo, newStubUserRepo())

	created, err := svc.Create(context.Background(), ports.CreateMemberInput{
		Name:           "Hank",
		Email:          "hank@example.com",
		Phone:          "555-0106",
		MembershipType: "Annual",
		Address:        "2 Oak Ave",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	empty := ""
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateMemberInput{Address: &empty})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Address != "" {
		t.Fatalf("explicit empty address should clear the stored value")
	}
}

func TestMemberService_Update_HashesPassword(t *testing.T) {
	repo := newStubMemberRepo()
	svc := newMemberService(repo, newStubUserRepo())

	created, err := svc.Create(context.Background(), ports.CreateMemberInput{
		Name:           "Iris",
		Email:          "iris@example.com",
		Phone:          "555-0107",
		MembershipType: "Monthly",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateMemberInput{Password: "newpass"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.PasswordHash == "newpass" {
		t.Fatalf("password must never be stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpass")); err != nil {
		t.Fatalf("updated hash does not verify: %v", err)
	}
}

func TestMemberService_Update_NotFound(t *testing.T) {
	svc := newMemberService(newStubMemberRepo(), newStubUserRepo())

	if _, err := svc.Update(context.Background(), "missing", ports.UpdateMemberInput{Name: "X"}); err != domain.ErrMemberNotFound {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
}

func TestDeriveStatus(t *testing.T) {
	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	if got := deriveStatus(domain.MemberStatusActive, &past, now); got != domain.MemberStatusExpired {
		t.Fatalf("past expiration should force expired, got %s", got)
	}
	if got := deriveStatus(domain.MemberStatusActive, &future, now); got != domain.MemberStatusActive {
		t.Fatalf("future expiration should keep status, got %s", got)
	}
	if got := deriveStatus(domain.MemberStatusActive, nil, now); got != domain.MemberStatusActive {
		t.Fatalf("no expiration should keep status, got %s", got)
	}
}
