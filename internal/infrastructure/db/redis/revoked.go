package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevokedTokens is the logout denylist backed by Redis.
// Key format: revoked:<token_id>, expiring with the token itself.
type RevokedTokens struct {
	client *redis.Client
}

// NewRevokedTokens creates a RevokedTokens store wrapping the given client.
func NewRevokedTokens(client *redis.Client) *RevokedTokens {
	return &RevokedTokens{client: client}
}

// Revoke marks a token id as revoked for ttl, the token's remaining life.
func (r *RevokedTokens) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.key(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token id has been revoked.
func (r *RevokedTokens) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (r *RevokedTokens) key(tokenID string) string {
	return "revoked:" + tokenID
}
