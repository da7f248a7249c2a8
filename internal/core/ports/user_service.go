package ports

import (
	"context"

	"github.com/fitgrid/gym-system/internal/core/domain"
)

// CreateUserInput carries an admin-initiated account creation. All fields are
// required and any of the three roles is allowed.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UserService is the account directory used by admin user management.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	UpdateRole(ctx context.Context, id, role string) (*domain.User, error)
	SetActive(ctx context.Context, id string, active bool) (*domain.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}
