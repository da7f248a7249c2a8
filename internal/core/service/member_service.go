package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fitgrid/gym-system/internal/core/domain"
	"github.com/fitgrid/gym-system/internal/core/ports"
)

// MemberService manages the membership lifecycle. Expiration and status are
// derived from the plan at creation; updates merge field by field.
type MemberService struct {
	members ports.MemberRepository
	users   ports.UserRepository
	logger  zerolog.Logger
}

func NewMemberService(members ports.MemberRepository, users ports.UserRepository, logger zerolog.Logger) *MemberService {
	return &MemberService{members: members, users: users, logger: logger}
}

func (s *MemberService) List(ctx context.Context) ([]*domain.Member, error) {
	return s.members.List(ctx)
}

func (s *MemberService) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	return s.members.FindByID(ctx, id)
}

func (s *MemberService) Create(ctx context.Context, input ports.CreateMemberInput) (*domain.Member, error) {
	if input.Name == "" || input.Email == "" || input.Phone == "" || input.MembershipType == "" {
		return nil, domain.ErrMissingMemberFields
	}

	now := time.Now().UTC()
	member := &domain.Member{
		Name:             input.Name,
		Email:            input.Email,
		Phone:            input.Phone,
		MembershipType:   input.MembershipType,
		Status:           domain.MemberStatusActive,
		JoinDate:         now,
		IsStudent:        input.IsStudent,
		Address:          input.Address,
		EmergencyContact: input.EmergencyContact,
		CoachID:          input.CoachID,
		CoachName:        input.CoachName,
		Age:              input.Age,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if term, known := domain.PlanTerm(input.MembershipType); known {
		exp := now.Add(term)
		member.ExpirationDate = &exp
	}
	member.IsTrial = domain.IsTrialPlan(input.MembershipType)
	member.Status = deriveStatus(member.Status, member.ExpirationDate, now)

	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		member.PasswordHash = string(hash)
	}

	created, err := s.members.Create(ctx, member)
	if err != nil {
		return nil, err
	}

	// Provision a login account for non-trial members who supplied a
	// password. Failure here does not undo the membership itself.
	if !created.IsTrial && input.Password != "" {
		if err := s.provisionAccount(ctx, created, now); err != nil {
			s.logger.Error().Err(err).Str("email", created.Email).Msg("failed to provision member account")
		}
	}

	s.logger.Info().
		Str("email", created.Email).
		Str("plan", created.MembershipType).
		Str("status", created.Status).
		Msg("member created")

	return created, nil
}

func (s *MemberService) Update(ctx context.Context, id string, input ports.UpdateMemberInput) (*domain.Member, error) {
	existing, err := s.members.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.UpdatedAt = time.Now().UTC()

	if input.Name != "" {
		existing.Name = input.Name
	}
	if input.Email != "" {
		existing.Email = input.Email
	}
	if input.Phone != "" {
		existing.Phone = input.Phone
	}
	if input.MembershipType != "" {
		existing.MembershipType = input.MembershipType
	}
	if input.Status != "" {
		existing.Status = input.Status
	}
	// Nullable free-text fields overwrite whenever supplied, empty string
	// included, so callers can clear them.
	if input.Address != nil {
		existing.Address = *input.Address
	}
	if input.EmergencyContact != nil {
		existing.EmergencyContact = *input.EmergencyContact
	}
	if input.ExpirationDate != nil {
		existing.ExpirationDate = input.ExpirationDate
	}
	if input.CoachID != nil {
		existing.CoachID = *input.CoachID
	}
	if input.CoachName != nil {
		existing.CoachName = *input.CoachName
	}
	if input.Age > 0 {
		existing.Age = input.Age
	}
	existing.IsTrial = input.IsTrial
	existing.IsStudent = input.IsStudent

	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		existing.PasswordHash = string(hash)
	}

	if err := s.members.Replace(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *MemberService) Delete(ctx context.Context, id string) (bool, error) {
	return s.members.Delete(ctx, id)
}

func (s *MemberService) provisionAccount(ctx context.Context, member *domain.Member, now time.Time) error {
	user := &domain.User{
		Name:         member.Name,
		Email:        member.Email,
		PasswordHash: member.PasswordHash,
		Role:         domain.RoleMember,
		AuthProvider: domain.AuthProviderLocal,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	_, err := s.users.Create(ctx, user)
	return err
}

// deriveStatus forces "expired" when the expiration date is already past,
// overriding whatever the plan defaulted to.
func deriveStatus(status string, expiration *time.Time, now time.Time) string {
	if expiration != nil && !expiration.After(now) {
		return domain.MemberStatusExpired
	}
	return status
}
