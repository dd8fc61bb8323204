package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/99minutos/car-rental-api/internal/core/domain"
	"github.com/99minutos/car-rental-api/internal/core/ports"
)

// DemoUserID is the user whose bookings are listed when no user_id is given.
const DemoUserID = "1"

var _ ports.BookingService = (*BookingService)(nil)

type BookingService struct {
	repo     ports.BookingRepository
	validate *inputValidator
	logger   zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, validate: newInputValidator(), logger: logger}
}

func (s *BookingService) ListBookings(ctx context.Context, userID string) ([]*domain.Booking, error) {
	if userID == "" {
		userID = DemoUserID
	}
	bookings, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// CreateBooking stores the booking as given. The status defaults to
// Upcoming only when the key is absent.
func (s *BookingService) CreateBooking(ctx context.Context, input *ports.CreateBookingInput) error {
	if err := s.validate.validateBooking(input); err != nil {
		return err
	}

	booking := &domain.Booking{
		UserID:    input.UserID,
		CarID:     input.CarID,
		CarName:   input.CarName,
		CarImage:  input.CarImage,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Location:  input.Location,
		Price:     input.Price,
		Status:    input.Status,
		Extra:     input.Extra,
	}
	if input.Status == nil && !input.Supplied("status") {
		status := domain.StatusUpcoming
		booking.Status = &status
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.logger.Error().Err(err).Msg("failed to create booking")
		return fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info().
		Str("booking_id", booking.ID).
		Str("user_id", domain.Value(booking.UserID)).
		Str("car_id", domain.Value(booking.CarID)).
		Msg("booking created")
	return nil
}
