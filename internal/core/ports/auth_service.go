package ports

import (
	"context"
	"time"

	"github.com/fitgrid/gym-system/internal/core/domain"
)

// Claims is the identity payload carried by a session token. It is valid for
// the current request only; sensitive operations re-fetch the account.
type Claims struct {
	UserID    string
	Email     string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}

// RegisterInput carries a self-registration request. Role defaults to
// "member"; "admin" is rejected on the public endpoint.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// ExternalIdentity is a third-party-verified identity tuple. Verification
// happens upstream; this layer only consumes the result.
type ExternalIdentity struct {
	GoogleID   string
	Email      string
	Name       string
	PictureURL string
}

// AuthService implements registration, login, token issuance and the
// external-identity resolution flow.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns a signed session token and the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// LoginWithGoogle resolves an external identity to a user (by google id,
	// then by email with linking, then by creation) and returns a token.
	LoginWithGoogle(ctx context.Context, identity ExternalIdentity) (string, *domain.User, error)
	// Verify re-fetches the token's account and fails if it is missing or
	// deactivated. The token alone is not proof of current standing.
	Verify(ctx context.Context, userID string) (*domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	// Logout revokes the presented token for the rest of its lifetime.
	Logout(ctx context.Context, claims Claims) error
}
