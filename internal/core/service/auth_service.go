package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fitgrid/gym-system/internal/core/domain"
	"github.com/fitgrid/gym-system/internal/core/ports"
)

// bcryptCost mirrors the cost the legacy installation hashed with, so old and
// new hashes verify interchangeably.
const bcryptCost = 10

// TokenRevoker abstracts the revoked-token store (Redis). A nil revoker
// disables revocation; logout then only succeeds client-side.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthService implements registration, login and external-identity sign-in.
type AuthService struct {
	users     ports.UserRepository
	revoker   TokenRevoker
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, revoker TokenRevoker, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	return &AuthService{users: users, revoker: revoker, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrMissingUserFields
	}

	role := input.Role
	if role == "" {
		role = domain.RoleMember
	}
	// Admin accounts are created through the admin directory, never by
	// self-registration.
	if role == domain.RoleAdmin {
		return nil, domain.ErrAdminRegistration
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	if existing, err := s.users.FindByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		AuthProvider: domain.AuthProviderLocal,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Str("role", created.Role).Msg("user registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !user.IsActive {
		return "", nil, domain.ErrAccountDeactivated
	}
	if user.PasswordHash == "" || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if err := s.touchLastLogin(ctx, user); err != nil {
		s.logger.Warn().Err(err).Str("email", user.Email).Msg("failed to record last login")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// LoginWithGoogle resolves a verified external identity to a user account:
// by google id first, then by email (linking the google id to the existing
// account), and finally by creating a fresh member account.
func (s *AuthService) LoginWithGoogle(ctx context.Context, identity ports.ExternalIdentity) (string, *domain.User, error) {
	if identity.GoogleID == "" || identity.Email == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()

	user, err := s.users.FindByGoogleID(ctx, identity.GoogleID)
	if errors.Is(err, domain.ErrUserNotFound) {
		user, err = s.users.FindByEmail(ctx, identity.Email)
		if errors.Is(err, domain.ErrUserNotFound) {
			user = &domain.User{
				Name:           identity.Name,
				Email:          identity.Email,
				Role:           domain.RoleMember,
				GoogleID:       identity.GoogleID,
				ProfilePicture: identity.PictureURL,
				AuthProvider:   domain.AuthProviderGoogle,
				IsActive:       true,
				LastLogin:      &now,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			user, err = s.users.Create(ctx, user)
			if err != nil {
				return "", nil, err
			}
			s.logger.Info().Str("email", user.Email).Msg("google account created")

			token, err := s.issueToken(user)
			if err != nil {
				return "", nil, err
			}
			return token, user, nil
		}
		if err != nil {
			return "", nil, err
		}
		if !user.IsActive {
			return "", nil, domain.ErrAccountDeactivated
		}

		// Existing local account: link the google identity to it. The link
		// must land, so this write is not best-effort like touchLastLogin.
		user.GoogleID = identity.GoogleID
		user.AuthProvider = domain.AuthProviderGoogle
		if identity.PictureURL != "" {
			user.ProfilePicture = identity.PictureURL
		}
		user.LastLogin = &now
		user.UpdatedAt = now
		if err := s.users.Replace(ctx, user); err != nil {
			return "", nil, err
		}
		s.logger.Info().Str("email", user.Email).Msg("google identity linked")

		token, err := s.issueToken(user)
		if err != nil {
			return "", nil, err
		}
		return token, user, nil
	} else if err != nil {
		return "", nil, err
	}

	if !user.IsActive {
		return "", nil, domain.ErrAccountDeactivated
	}

	if err := s.touchLastLogin(ctx, user); err != nil {
		s.logger.Warn().Err(err).Str("email", user.Email).Msg("failed to record last login")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Verify re-fetches the account behind a token. Deactivated or deleted
// accounts fail even when the token itself is still valid.
func (s *AuthService) Verify(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrAccountDeactivated
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrAccountDeactivated
	}
	return user, nil
}

// Profile returns the account behind a token, subject to the same liveness
// check as Verify.
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.Verify(ctx, userID)
}

// Logout revokes the presented token for the remainder of its lifetime.
func (s *AuthService) Logout(ctx context.Context, claims ports.Claims) error {
	if s.revoker == nil || claims.TokenID == "" {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.revoker.Revoke(ctx, claims.TokenID, ttl); err != nil {
		s.logger.Warn().Err(err).Str("token_id", claims.TokenID).Msg("failed to revoke token")
		return err
	}
	return nil
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"jti":   uuid.NewString(),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) touchLastLogin(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	user.LastLogin = &now
	user.UpdatedAt = now
	return s.users.Replace(ctx, user)
}
