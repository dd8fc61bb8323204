package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/car-rental-api/internal/core/domain"
	"github.com/99minutos/car-rental-api/internal/core/ports"
	"github.com/99minutos/car-rental-api/internal/pkg/credentials"
)

var _ ports.AccountService = (*AccountService)(nil)

// AccountService implements signup and login.
type AccountService struct {
	repo     ports.AccountRepository
	hasher   credentials.Hasher
	validate *inputValidator
	now      func() time.Time
	logger   zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, hasher credentials.Hasher, logger zerolog.Logger) *AccountService {
	if hasher == nil {
		hasher = credentials.SHA256Hasher{}
	}
	return &AccountService{
		repo:     repo,
		hasher:   hasher,
		validate: newInputValidator(),
		now:      time.Now,
		logger:   logger,
	}
}

// Signup validates the payload and stores a new account. The email
// pre-check is backed by a unique index in the store, which reports
// collisions the pre-check cannot see.
func (s *AccountService) Signup(ctx context.Context, input *ports.SignupInput) error {
	in, err := s.validate.validateSignup(input)
	if err != nil {
		return err
	}

	_, err = s.repo.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return domain.ErrEmailTaken
	case !errors.Is(err, domain.ErrAccountNotFound):
		return fmt.Errorf("signup: lookup email: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return fmt.Errorf("signup: %w", err)
	}

	account := &domain.Account{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		AgreeTerms:   in.AgreeTerms,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return err
		}
		s.logger.Error().Err(err).Msg("failed to create account")
		return fmt.Errorf("signup: %w", err)
	}

	s.logger.Info().Str("account_id", account.ID).Msg("account created")
	return nil
}

// Login verifies credentials. Unknown emails and wrong passwords are
// reported with the same error.
func (s *AccountService) Login(ctx context.Context, input ports.LoginInput) (*domain.Account, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || strings.TrimSpace(input.Password) == "" {
		return nil, &domain.ValidationError{Message: "Email and password required"}
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Verify(account.PasswordHash, input.Password) {
		return nil, domain.ErrInvalidCredentials
	}
	return account, nil
}
