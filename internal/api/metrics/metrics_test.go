package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/99minutos/car-rental-api/internal/core/domain"
)

func TestOutcome(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, OutcomeOK},
		{domain.NewFieldError("name", "Name is required"), OutcomeInvalid},
		{fmt.Errorf("signup: %w", domain.ErrEmailTaken), OutcomeConflict},
		{domain.ErrInvalidCredentials, OutcomeUnauthorized},
		{domain.ErrUnauthorized, OutcomeUnauthorized},
		{errors.New("socket closed"), OutcomeError},
	}
	for _, tc := range cases {
		if got := Outcome(tc.err); got != tc.want {
			t.Fatalf("Outcome(%v) = %s, want %s", tc.err, got, tc.want)
		}
	}
}
