package ports

import (
	"context"

	"github.com/99minutos/car-rental-api/internal/core/domain"
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	// Create inserts the booking and sets its ID.
	Create(ctx context.Context, booking *domain.Booking) error
	// ListByUser returns bookings with the given user_id in storage order.
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	Count(ctx context.Context) (int64, error)
}
