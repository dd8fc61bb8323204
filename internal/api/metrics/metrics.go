// Package metrics defines and registers the custom Prometheus metrics of the
// car rental API. HTTP request metrics come from the echoprometheus
// middleware; this package only holds business counters.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/99minutos/car-rental-api/internal/core/domain"
)

const namespace = "car_rental"

// Outcome labels.
const (
	OutcomeOK           = "ok"
	OutcomeInvalid      = "invalid"
	OutcomeConflict     = "conflict"
	OutcomeUnauthorized = "unauthorized"
	OutcomeError        = "error"
)

// SignupsTotal counts signup attempts.
// Label:
//   - result: one of the Outcome labels
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: one of the Outcome labels
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// BookingsCreatedTotal counts booking creation attempts.
// Label:
//   - result: one of the Outcome labels
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of booking creation attempts, by result.",
	},
	[]string{"result"},
)

// ProfileRequestsTotal counts profile lookups.
var ProfileRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_requests_total",
		Help:      "Total number of profile lookups, by result.",
	},
	[]string{"result"},
)

// Outcome maps a service error to its result label.
func Outcome(err error) string {
	var ve *domain.ValidationError
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &ve):
		return OutcomeInvalid
	case errors.Is(err, domain.ErrEmailTaken):
		return OutcomeConflict
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUnauthorized):
		return OutcomeUnauthorized
	default:
		return OutcomeError
	}
}
