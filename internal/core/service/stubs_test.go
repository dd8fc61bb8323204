package service

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/car-rental-api/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubAccountRepo struct {
	accounts  []*domain.Account
	createErr error // if set, Create returns this error
	findErr   error // if set, FindByEmail and FindFirst return this error
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{}
}

func (r *stubAccountRepo) Create(_ context.Context, a *domain.Account) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *a
	clone.ID = "acc-" + strconv.Itoa(len(r.accounts)+1)
	a.ID = clone.ID
	r.accounts = append(r.accounts, &clone)
	return nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, a := range r.accounts {
		if a.Email == email {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindFirst(_ context.Context) (*domain.Account, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if len(r.accounts) == 0 {
		return nil, domain.ErrAccountNotFound
	}
	clone := *r.accounts[0]
	return &clone, nil
}

type stubBookingRepo struct {
	bookings  []*domain.Booking
	createErr error
	countErr  error
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *b
	clone.ID = "bk-" + strconv.Itoa(len(r.bookings)+1)
	b.ID = clone.ID
	r.bookings = append(r.bookings, &clone)
	return nil
}

func (r *stubBookingRepo) ListByUser(_ context.Context, userID string) ([]*domain.Booking, error) {
	out := []*domain.Booking{}
	for _, b := range r.bookings {
		if domain.Value(b.UserID) == userID {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) Count(_ context.Context) (int64, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	return int64(len(r.bookings)), nil
}

type stubSeedLock struct {
	acquireFn func(ctx context.Context, key string, ttl time.Duration) (bool, error)
	released  []string
}

func (l *stubSeedLock) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return l.acquireFn(ctx, key, ttl)
}

func (l *stubSeedLock) Release(_ context.Context, key string) error {
	l.released = append(l.released, key)
	return nil
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
