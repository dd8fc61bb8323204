// @title        Car Rental API
// @version      1.0
// @description  Signup, login, bookings and profile for the car rental web client.
// @BasePath     /
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/99minutos/car-rental-api/internal/app"
	"github.com/99minutos/car-rental-api/internal/pkg/config"
	"github.com/99minutos/car-rental-api/pkg/logger"
)

const serviceName = "car-rental-api"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, envconfig.OsLookuper(), os.Stdout)
	stop()

	if err != nil {
		log := logger.New(logger.Options{Service: serviceName, Output: os.Stderr})
		log.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}

// run loads configuration from lookuper, serves until ctx is cancelled and
// releases every connection before returning.
func run(ctx context.Context, lookuper envconfig.Lookuper, out io.Writer) error {
	cfg, err := config.LoadWith(ctx, lookuper)
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
		Output:  out,
	})

	application, err := app.New(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("app init: %w", err)
	}

	runErr := application.Run(ctx)

	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := application.Close(closeCtx); err != nil {
		log.Error().Err(err).Msg("close")
	}

	if runErr != nil {
		return runErr
	}
	log.Info().Msg("server stopped")
	return nil
}
