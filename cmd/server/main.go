package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fitgrid/gym-system/internal/api"
	"github.com/fitgrid/gym-system/internal/api/handler"
	"github.com/fitgrid/gym-system/internal/infrastructure/config"
	mongodb "github.com/fitgrid/gym-system/internal/infrastructure/db/mongo"
	redisdb "github.com/fitgrid/gym-system/internal/infrastructure/db/redis"
	"github.com/fitgrid/gym-system/internal/infrastructure/oauth"
	"github.com/fitgrid/gym-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	// Redis backs the logout denylist. The service runs without it, logout
	// then becomes a client-side token discard.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, token revocation disabled")
		rdb = nil
	}

	// Google sign-in is optional; without a client id the /api/auth/google
	// route answers 503.
	var google handler.GoogleCredentialVerifier
	if cfg.GoogleClientID != "" {
		verifier, err := oauth.NewGoogleVerifier(cfg.GoogleClientID)
		if err != nil {
			log.Warn().Err(err).Msg("google verifier init failed, google sign-in disabled")
		} else {
			defer verifier.Close()
			google = verifier
		}
	}

	e := api.NewRouter(db, rdb, google, cfg, logger.Component("api"))

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
