package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/car-rental-api/internal/core/domain"
	"github.com/99minutos/car-rental-api/internal/core/ports"
)

const (
	placeholderAvatar = "https://randomuser.me/api/portraits/men/32.jpg"
	memberSinceLayout = "January 2006"
)

var _ ports.ProfileService = (*ProfileService)(nil)

// ProfileService serves the account page. There is no caller identity yet,
// so in demo mode it shows the first stored account; outside demo mode every
// request is unauthorized.
type ProfileService struct {
	repo     ports.AccountRepository
	demoMode bool
	now      func() time.Time
	logger   zerolog.Logger
}

func NewProfileService(repo ports.AccountRepository, demoMode bool, logger zerolog.Logger) *ProfileService {
	if !demoMode {
		logger.Warn().Msg("demo mode disabled: profile endpoint will reject all requests")
	}
	return &ProfileService{repo: repo, demoMode: demoMode, now: time.Now, logger: logger}
}

func (s *ProfileService) GetProfile(ctx context.Context) (*ports.Profile, error) {
	if !s.demoMode {
		return nil, domain.ErrUnauthorized
	}

	account, err := s.repo.FindFirst(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	created := account.CreatedAt
	if created.IsZero() {
		created = s.now().UTC()
	}

	return &ports.Profile{
		ID:          account.ID,
		Name:        account.Name,
		Email:       account.Email,
		Avatar:      placeholderAvatar,
		MemberSince: created.Format(memberSinceLayout),
	}, nil
}
