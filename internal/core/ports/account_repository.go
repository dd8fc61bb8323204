package ports

import (
	"context"

	"github.com/99minutos/car-rental-api/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	// Create inserts the account and sets its ID. A store-level email
	// collision returns domain.ErrEmailTaken.
	Create(ctx context.Context, account *domain.Account) error
	// FindByEmail returns domain.ErrAccountNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// FindFirst returns whichever account the store yields first.
	FindFirst(ctx context.Context) (*domain.Account, error)
}
