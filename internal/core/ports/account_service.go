package ports

import (
	"context"

	"github.com/99minutos/car-rental-api/internal/core/domain"
)

// SignupInput is the typed signup payload. A nil *SignupInput means the
// request carried no payload at all.
type SignupInput struct {
	Name       string `json:"name"       validate:"required"`
	Email      string `json:"email"      validate:"required,emailshape"`
	Password   string `json:"password"   validate:"required,min=6"`
	AgreeTerms bool   `json:"agreeTerms" validate:"required"`
}

// LoginInput carries login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// AccountService defines the signup and login use cases.
type AccountService interface {
	Signup(ctx context.Context, input *SignupInput) error
	Login(ctx context.Context, input LoginInput) (*domain.Account, error)
}

// Profile is the public view of an account.
type Profile struct {
	ID          string
	Name        string
	Email       string
	Avatar      string
	MemberSince string
}

// ProfileService returns the profile shown on the account page.
type ProfileService interface {
	GetProfile(ctx context.Context) (*Profile, error)
}
