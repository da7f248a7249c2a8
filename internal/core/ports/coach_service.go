package ports

import (
	"context"

	"github.com/fitgrid/gym-system/internal/core/domain"
)

// CoachRepository defines persistence operations for coaches.
type CoachRepository interface {
	List(ctx context.Context) ([]*domain.Coach, error)
	FindByID(ctx context.Context, id string) (*domain.Coach, error)
	Create(ctx context.Context, coach *domain.Coach) (*domain.Coach, error)
	Replace(ctx context.Context, coach *domain.Coach) error
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// CreateCoachInput carries a new coach record. A non-empty Password also
// provisions a linked coach account.
type CreateCoachInput struct {
	Name           string
	Email          string
	Phone          string
	Specialization string
	Experience     int
	Salary         float64
	Password       string
}

// UpdateCoachInput is a full replacement of the mutable coach fields.
type UpdateCoachInput struct {
	Name           string
	Email          string
	Phone          string
	Specialization string
	Experience     int
	Status         string
	Salary         float64
}

// CoachService manages coach records.
type CoachService interface {
	List(ctx context.Context) ([]*domain.Coach, error)
	GetByID(ctx context.Context, id string) (*domain.Coach, error)
	Create(ctx context.Context, input CreateCoachInput) (*domain.Coach, error)
	Update(ctx context.Context, id string, input UpdateCoachInput) (*domain.Coach, error)
	Delete(ctx context.Context, id string) (bool, error)
}
