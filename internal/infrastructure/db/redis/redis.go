package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// pingTimeout bounds the startup connectivity probe when the config carries
// no explicit timeout.
const pingTimeout = 5 * time.Second

// Config holds the connection settings for the revocation store.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect opens a client against the configured instance and probes it with
// a ping. Callers treat failure as non-fatal: the server then runs with
// token revocation disabled.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = pingTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
