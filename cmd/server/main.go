// Chemba waste platform API server.
//
// @title        Chemba Waste Platform API
// @version      1.0
// @description  Civic waste reporting, reward points, pickup scheduling and community events.
// @BasePath     /api
//
// @securityDefinitions.apikey ApiKeyAuth
// @in   header
// @name x-auth-token
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chemba/waste-platform/internal/api"
	mongodb "github.com/chemba/waste-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/chemba/waste-platform/internal/infrastructure/db/redis"
	"github.com/chemba/waste-platform/internal/infrastructure/queue"
	"github.com/chemba/waste-platform/internal/pkg/config"
	"github.com/chemba/waste-platform/pkg/logger"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	if cfg.Auth.JWTSecret == "" || cfg.Auth.JWTRefreshSecret == "" {
		log.Fatal().Msg("JWT_SECRET and JWT_REFRESH_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	ensureIndexes(ctx, client, db, log)

	auditRepo := mongodb.NewAuditRepository(db)
	dispatcher := queue.NewDispatcher(0, auditRepo, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(client, db, rdb, cfg, dispatcher, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}

func ensureIndexes(ctx context.Context, client *mongo.Client, db *mongo.Database, log zerolog.Logger) {
	indexable := []interface {
		EnsureIndexes(ctx context.Context) error
	}{
		mongodb.NewUserRepository(db),
		mongodb.NewReportRepository(db),
		mongodb.NewScheduleRepository(client, db),
		mongodb.NewEventRepository(db),
	}
	for _, repo := range indexable {
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("index creation failed")
		}
	}
}
