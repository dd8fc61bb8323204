package domain

// StatusUpcoming is applied to bookings created without a status.
const StatusUpcoming = "Upcoming"

// Booking is a reservation of a car by a user. Caller-supplied fields are
// stored exactly as given; a nil field was supplied as null. Extra carries
// payload keys outside the fields below.
type Booking struct {
	ID        string
	UserID    *string
	CarID     *string
	CarName   *string
	CarImage  *string
	StartDate *string
	EndDate   *string
	Location  *string
	Price     *float64
	Status    *string
	Extra     map[string]any
}

// Value returns *p, or the zero value when p is nil.
func Value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
