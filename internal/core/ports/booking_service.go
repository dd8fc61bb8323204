package ports

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/99minutos/car-rental-api/internal/core/domain"
)

// CreateBookingInput is the booking payload. A required field is satisfied
// when its key is present, even with a null value; nil pointers then mean
// null. Keys outside the schema are kept in Extra and stored as given.
type CreateBookingInput struct {
	UserID    *string  `json:"user_id"    validate:"supplied"`
	CarID     *string  `json:"car_id"     validate:"supplied"`
	CarName   *string  `json:"car_name"   validate:"supplied"`
	CarImage  *string  `json:"car_image"  validate:"supplied"`
	StartDate *string  `json:"start_date" validate:"supplied"`
	EndDate   *string  `json:"end_date"   validate:"supplied"`
	Location  *string  `json:"location"   validate:"supplied"`
	Price     *float64 `json:"price"      validate:"supplied"`
	Status    *string  `json:"status"`

	Extra map[string]any `json:"-"`

	keys map[string]bool
}

// reservedKeys never reach storage; the store assigns the identifier.
var reservedKeys = map[string]bool{"_id": true, "id": true}

// Supplied reports whether key was present in the decoded payload.
func (in CreateBookingInput) Supplied(key string) bool {
	return in.keys[key]
}

// UnmarshalJSON matches schema keys exactly and collects the rest into
// Extra.
func (in *CreateBookingInput) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := CreateBookingInput{keys: make(map[string]bool, len(raw))}
	targets := map[string]any{
		"user_id":    &out.UserID,
		"car_id":     &out.CarID,
		"car_name":   &out.CarName,
		"car_image":  &out.CarImage,
		"start_date": &out.StartDate,
		"end_date":   &out.EndDate,
		"location":   &out.Location,
		"price":      &out.Price,
		"status":     &out.Status,
	}

	for key, value := range raw {
		if target, ok := targets[key]; ok {
			if err := json.Unmarshal(value, target); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			out.keys[key] = true
			continue
		}
		if reservedKeys[key] {
			continue
		}
		var v any
		if err := json.Unmarshal(value, &v); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if out.Extra == nil {
			out.Extra = make(map[string]any)
		}
		out.Extra[key] = v
	}

	*in = out
	return nil
}

// BookingService defines booking use cases.
type BookingService interface {
	// ListBookings returns the bookings of userID; an empty userID selects
	// the demo user.
	ListBookings(ctx context.Context, userID string) ([]*domain.Booking, error)
	CreateBooking(ctx context.Context, input *CreateBookingInput) error
}

// SeedLock serialises demo seeding across instances.
type SeedLock interface {
	// Acquire returns false when another holder owns key.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
