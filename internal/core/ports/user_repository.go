package ports

import (
	"context"

	"github.com/fitgrid/gym-system/internal/core/domain"
)

// UserRepository defines persistence operations for authentication users.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
	// List returns all users, newest created first.
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Replace(ctx context.Context, user *domain.User) error
	UpdateRole(ctx context.Context, id, role string) (*domain.User, error)
	UpdateActive(ctx context.Context, id string, active bool) (*domain.User, error)
	// Delete reports whether a user was removed. No cascading deletes.
	Delete(ctx context.Context, id string) (bool, error)
}
