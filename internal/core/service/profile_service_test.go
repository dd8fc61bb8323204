package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/99minutos/car-rental-api/internal/core/domain"
)

func TestProfileService_GetProfile(t *testing.T) {
	repo := newStubAccountRepo()
	repo.accounts = []*domain.Account{
		{ID: "first", Name: "Jane", Email: "jane@example.com", CreatedAt: time.Date(2023, time.July, 2, 8, 0, 0, 0, time.UTC)},
		{ID: "second", Name: "John", Email: "john@example.com"},
	}
	svc := NewProfileService(repo, true, discardLogger)

	p, err := svc.GetProfile(context.Background())
	if err != nil {
		t.Fatalf("GetProfile returned error: %v", err)
	}
	if p.ID != "first" || p.Name != "Jane" || p.Email != "jane@example.com" {
		t.Fatalf("unexpected profile: %+v", p)
	}
	if p.MemberSince != "July 2023" {
		t.Fatalf("unexpected memberSince: %s", p.MemberSince)
	}
	if p.Avatar != "https://randomuser.me/api/portraits/men/32.jpg" {
		t.Fatalf("unexpected avatar: %s", p.Avatar)
	}
}

func TestProfileService_MissingCreatedAt(t *testing.T) {
	repo := newStubAccountRepo()
	repo.accounts = []*domain.Account{{ID: "x", Name: "Legacy", Email: "legacy@example.com"}}
	svc := NewProfileService(repo, true, discardLogger)
	svc.now = func() time.Time { return time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC) }

	p, err := svc.GetProfile(context.Background())
	if err != nil {
		t.Fatalf("GetProfile returned error: %v", err)
	}
	if p.MemberSince != "February 2025" {
		t.Fatalf("expected current month, got %s", p.MemberSince)
	}
}

func TestProfileService_Unauthorized(t *testing.T) {
	svc := NewProfileService(newStubAccountRepo(), true, discardLogger)
	if _, err := svc.GetProfile(context.Background()); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for empty store, got %v", err)
	}

	repo := newStubAccountRepo()
	repo.accounts = []*domain.Account{{ID: "x"}}
	svc = NewProfileService(repo, false, discardLogger)
	if _, err := svc.GetProfile(context.Background()); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized outside demo mode, got %v", err)
	}
}

func TestProfileService_StoreFailure(t *testing.T) {
	repo := newStubAccountRepo()
	repo.findErr = errors.New("server selection timeout")
	svc := NewProfileService(repo, true, discardLogger)

	_, err := svc.GetProfile(context.Background())
	if err == nil || errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}
