package ports

import (
	"context"

	"github.com/fitgrid/gym-system/internal/core/domain"
)

// MemberRepository defines persistence operations for membership records.
type MemberRepository interface {
	List(ctx context.Context) ([]*domain.Member, error)
	FindByID(ctx context.Context, id string) (*domain.Member, error)
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	Replace(ctx context.Context, member *domain.Member) error
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}
