package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/car-rental-api/internal/core/domain"
	"github.com/99minutos/car-rental-api/internal/core/ports"
)

const (
	seedLockKey = "seed:demo-bookings"
	seedLockTTL = 30 * time.Second
)

// DemoBooking returns the sample booking inserted into an empty store.
func DemoBooking() *domain.Booking {
	return &domain.Booking{
		UserID:    domain.Ptr(DemoUserID),
		CarID:     domain.Ptr("1"),
		CarName:   domain.Ptr("Tesla Model 3"),
		CarImage:  domain.Ptr("https://images.unsplash.com/photo-1560958089-b8a1929cea89?auto=format&fit=crop&w=2071&q=80"),
		StartDate: domain.Ptr("2023-07-15"),
		EndDate:   domain.Ptr("2023-07-18"),
		Location:  domain.Ptr("New York"),
		Price:     domain.Ptr(267.0),
		Status:    domain.Ptr(domain.StatusUpcoming),
	}
}

// NopSeedLock always grants the lock. Used when no Redis is configured.
type NopSeedLock struct{}

func (NopSeedLock) Acquire(context.Context, string, time.Duration) (bool, error) { return true, nil }
func (NopSeedLock) Release(context.Context, string) error                        { return nil }

// Seeder inserts the demo booking once, before the server starts.
type Seeder struct {
	repo   ports.BookingRepository
	lock   ports.SeedLock
	logger zerolog.Logger
}

func NewSeeder(repo ports.BookingRepository, lock ports.SeedLock, logger zerolog.Logger) *Seeder {
	if lock == nil {
		lock = NopSeedLock{}
	}
	return &Seeder{repo: repo, lock: lock, logger: logger}
}

// Run reports whether the demo booking was inserted.
func (s *Seeder) Run(ctx context.Context) (bool, error) {
	acquired, err := s.lock.Acquire(ctx, seedLockKey, seedLockTTL)
	switch {
	case err != nil:
		// The count check below still guards a single instance.
		s.logger.Warn().Err(err).Msg("seed lock unavailable, seeding without it")
	case !acquired:
		s.logger.Info().Msg("another instance is seeding, skipped")
		return false, nil
	default:
		defer func() {
			if err := s.lock.Release(context.WithoutCancel(ctx), seedLockKey); err != nil {
				s.logger.Warn().Err(err).Msg("failed to release seed lock")
			}
		}()
	}

	n, err := s.repo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("seed: count bookings: %w", err)
	}
	if n > 0 {
		s.logger.Debug().Int64("bookings", n).Msg("bookings present, demo seed skipped")
		return false, nil
	}

	booking := DemoBooking()
	if err := s.repo.Create(ctx, booking); err != nil {
		return false, fmt.Errorf("seed: insert demo booking: %w", err)
	}

	s.logger.Info().Str("booking_id", booking.ID).Msg("demo booking inserted")
	return true, nil
}
