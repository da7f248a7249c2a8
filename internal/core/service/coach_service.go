package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fitgrid/gym-system/internal/core/domain"
	"github.com/fitgrid/gym-system/internal/core/ports"
)

// CoachService manages coach records.
type CoachService struct {
	coaches ports.CoachRepository
	users   ports.UserRepository
	logger  zerolog.Logger
}

func NewCoachService(coaches ports.CoachRepository, users ports.UserRepository, logger zerolog.Logger) *CoachService {
	return &CoachService{coaches: coaches, users: users, logger: logger}
}

func (s *CoachService) List(ctx context.Context) ([]*domain.Coach, error) {
	return s.coaches.List(ctx)
}

func (s *CoachService) GetByID(ctx context.Context, id string) (*domain.Coach, error) {
	return s.coaches.FindByID(ctx, id)
}

func (s *CoachService) Create(ctx context.Context, input ports.CreateCoachInput) (*domain.Coach, error) {
	now := time.Now().UTC()
	coach := &domain.Coach{
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Specialization: input.Specialization,
		Experience:     input.Experience,
		Status:         "active",
		Salary:         input.Salary,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.coaches.Create(ctx, coach)
	if err != nil {
		return nil, err
	}

	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		user := &domain.User{
			Name:         created.Name,
			Email:        created.Email,
			PasswordHash: string(hash),
			Role:         domain.RoleCoach,
			AuthProvider: domain.AuthProviderLocal,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if _, err := s.users.Create(ctx, user); err != nil {
			s.logger.Error().Err(err).Str("email", created.Email).Msg("failed to provision coach account")
		}
	}

	s.logger.Info().Str("email", created.Email).Str("specialization", created.Specialization).Msg("coach created")
	return created, nil
}

func (s *CoachService) Update(ctx context.Context, id string, input ports.UpdateCoachInput) (*domain.Coach, error) {
	existing, err := s.coaches.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Email = input.Email
	existing.Phone = input.Phone
	existing.Specialization = input.Specialization
	existing.Experience = input.Experience
	if input.Status != "" {
		existing.Status = input.Status
	}
	existing.Salary = input.Salary
	existing.UpdatedAt = time.Now().UTC()

	if err := s.coaches.Replace(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *CoachService) Delete(ctx context.Context, id string) (bool, error) {
	return s.coaches.Delete(ctx, id)
}
