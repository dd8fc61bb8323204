package domain

import "time"

// Account is a registered user of the rental site.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	AgreeTerms   bool
	CreatedAt    time.Time
}
