package ports

import (
	"context"
	"time"

	"github.com/fitgrid/gym-system/internal/core/domain"
)

// CreateMemberInput carries all data for a new membership. Name, Email, Phone
// and MembershipType are required. A non-empty Password on a non-trial plan
// provisions a linked member account.
type CreateMemberInput struct {
	Name             string
	Email            string
	Phone            string
	MembershipType   string
	Address          string
	EmergencyContact string
	CoachID          string
	CoachName        string
	Age              int
	IsStudent        bool
	Password         string
}

// UpdateMemberInput carries a partial membership update. Plain strings
// overwrite only when non-empty; pointer fields overwrite whenever supplied
// (an explicit empty string clears the stored value); booleans always
// overwrite.
type UpdateMemberInput struct {
	Name             string
	Email            string
	Phone            string
	MembershipType   string
	Status           string
	Address          *string
	EmergencyContact *string
	ExpirationDate   *time.Time
	CoachID          *string
	CoachName        *string
	Age              int
	IsTrial          bool
	IsStudent        bool
	Password         string
}

// MemberService manages the membership lifecycle: plan-derived expiration and
// status on create, partial merge on update, optional account provisioning.
type MemberService interface {
	List(ctx context.Context) ([]*domain.Member, error)
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	Create(ctx context.Context, input CreateMemberInput) (*domain.Member, error)
	Update(ctx context.Context, id string, input UpdateMemberInput) (*domain.Member, error)
	Delete(ctx context.Context, id string) (bool, error)
}
