package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/car-rental-api/internal/api/metrics"
	"github.com/99minutos/car-rental-api/internal/core/domain"
	"github.com/99minutos/car-rental-api/internal/core/ports"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// List handles GET /api/bookings.
//
// @Summary      List bookings of a user
// @Tags         bookings
// @Produce      json
// @Param        user_id  query     string  false  "User id (defaults to the demo user)"
// @Success      200      {object}  listBookingsResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.bookings.ListBookings(c.Request().Context(), c.QueryParam("user_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listBookingsResponse{
		Success:  true,
		Bookings: toBookingResponses(bookings),
	})
}

// Create handles POST /api/bookings.
//
// Keys outside the documented fields are stored as given and returned by
// List; a key supplied as null counts as present.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      ports.CreateBookingInput  true  "Booking details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req *ports.CreateBookingInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err := h.bookings.CreateBooking(c.Request().Context(), req)
	metrics.BookingsCreatedTotal.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Success: true, Message: "Booking created successfully"})
}

func toBookingResponses(bookings []*domain.Booking) []bookingResponse {
	out := make([]bookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = bookingResponse{
			ID:        b.ID,
			UserID:    b.UserID,
			CarID:     b.CarID,
			CarName:   b.CarName,
			CarImage:  b.CarImage,
			StartDate: b.StartDate,
			EndDate:   b.EndDate,
			Location:  b.Location,
			Price:     b.Price,
			Status:    b.Status,
			Extra:     b.Extra,
		}
	}
	return out
}
