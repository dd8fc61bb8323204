// Package app wires configuration, storage, services and the HTTP router
// into one runnable unit.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/99minutos/car-rental-api/internal/api"
	"github.com/99minutos/car-rental-api/internal/api/handler"
	"github.com/99minutos/car-rental-api/internal/core/ports"
	"github.com/99minutos/car-rental-api/internal/core/service"
	mongostore "github.com/99minutos/car-rental-api/internal/infrastructure/db/mongo"
	redisstore "github.com/99minutos/car-rental-api/internal/infrastructure/db/redis"
	"github.com/99minutos/car-rental-api/internal/pkg/config"
	"github.com/99minutos/car-rental-api/internal/pkg/credentials"
)

type App struct {
	cfg    *config.Config
	log    zerolog.Logger
	store  *mongostore.Store
	redis  *goredis.Client
	router *echo.Echo
}

// New connects to the stores, seeds demo data and builds the router. The
// demo seed completes before New returns, so it runs before the server
// accepts connections.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	hasher, err := credentials.NewHasher(cfg.PasswordHasher)
	if err != nil {
		return nil, err
	}

	a := &App{cfg: cfg, log: log}

	store, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return nil, err
	}
	a.store = store
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	var lock ports.SeedLock = service.NopSeedLock{}
	if cfg.Redis.Addr != "" {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			_ = a.Close(ctx)
			return nil, err
		}
		a.redis = rdb

		seedLock, err := redisstore.NewSeedLock(rdb)
		if err != nil {
			_ = a.Close(ctx)
			return nil, err
		}
		lock = seedLock
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	}

	if err := store.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure indexes")
	}

	db := store.Database()
	accounts := mongostore.NewAccountRepository(db)
	bookings := mongostore.NewBookingRepository(db)

	if _, err := service.NewSeeder(bookings, lock, log).Run(ctx); err != nil {
		_ = a.Close(ctx)
		return nil, fmt.Errorf("seed demo data: %w", err)
	}

	checks := map[string]handler.Checker{"mongodb": store.Ping}
	if a.redis != nil {
		checks["redis"] = func(ctx context.Context) error { return a.redis.Ping(ctx).Err() }
	}

	a.router = api.NewRouter(api.Services{
		Accounts:     service.NewAccountService(accounts, hasher, log),
		Bookings:     service.NewBookingService(bookings, log),
		Profiles:     service.NewProfileService(accounts, cfg.DemoMode, log),
		HealthChecks: checks,
	}, api.Options{
		CORSOrigins: cfg.CORSOrigins,
		Metrics:     true,
		Logger:      log,
	})

	return a, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully within
// the configured timeout.
func (a *App) Run(ctx context.Context) error {
	addr := ":" + a.cfg.Port
	errCh := make(chan error, 1)

	go func() {
		a.log.Info().Str("addr", addr).Msg("http server listening")
		if err := a.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	timeout := a.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	a.log.Info().Dur("timeout", timeout).Msg("shutting down http server")
	if err := a.router.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

// Close releases the store connections. It is safe on a partially built App.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis close: %w", err))
		}
	}
	if a.store != nil {
		if err := a.store.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("mongo disconnect: %w", err))
		}
	}
	return errors.Join(errs...)
}
