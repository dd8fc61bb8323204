package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/99minutos/car-rental-api/internal/core/domain"
)

func mockOpts() *mtest.Options {
	return mtest.NewOptions().ClientType(mtest.Mock)
}

func TestAccountRepository_Create(t *testing.T) {
	mt := mtest.New(t, mockOpts())

	mt.Run("sets id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewAccountRepository(mt.DB)

		account := &domain.Account{Name: "Jane", Email: "jane@example.com", PasswordHash: "digest", AgreeTerms: true, CreatedAt: time.Now().UTC()}
		if err := repo.Create(context.Background(), account); err != nil {
			mt.Fatalf("Create returned error: %v", err)
		}
		if _, err := primitive.ObjectIDFromHex(account.ID); err != nil {
			mt.Fatalf("expected hex object id, got %q", account.ID)
		}
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: car_rental.users index: email_unique",
		}))
		repo := NewAccountRepository(mt.DB)

		err := repo.Create(context.Background(), &domain.Account{Email: "jane@example.com"})
		if !errors.Is(err, domain.ErrEmailTaken) {
			mt.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})
}

func TestAccountRepository_FindByEmail(t *testing.T) {
	mt := mtest.New(t, mockOpts())

	mt.Run("found", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		created := time.Date(2023, time.July, 1, 12, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "car_rental.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "Jane"},
			{Key: "email", Value: "jane@example.com"},
			{Key: "password", Value: "digest"},
			{Key: "agreeTerms", Value: true},
			{Key: "created_at", Value: created},
		}))
		repo := NewAccountRepository(mt.DB)

		got, err := repo.FindByEmail(context.Background(), "jane@example.com")
		if err != nil {
			mt.Fatalf("FindByEmail returned error: %v", err)
		}
		if got.ID != id.Hex() || got.Name != "Jane" || got.PasswordHash != "digest" || !got.AgreeTerms {
			mt.Fatalf("unexpected account: %+v", got)
		}
		if !got.CreatedAt.Equal(created) {
			mt.Fatalf("unexpected created_at: %v", got.CreatedAt)
		}
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "car_rental.users", mtest.FirstBatch))
		repo := NewAccountRepository(mt.DB)

		if _, err := repo.FindByEmail(context.Background(), "ghost@example.com"); !errors.Is(err, domain.ErrAccountNotFound) {
			mt.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})

	mt.Run("first without created_at", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "car_rental.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Legacy"},
			{Key: "email", Value: "legacy@example.com"},
		}))
		repo := NewAccountRepository(mt.DB)

		got, err := repo.FindFirst(context.Background())
		if err != nil {
			mt.Fatalf("FindFirst returned error: %v", err)
		}
		if !got.CreatedAt.IsZero() {
			mt.Fatalf("expected zero created_at, got %v", got.CreatedAt)
		}
	})
}

func TestBookingRepository_ListByUser(t *testing.T) {
	mt := mtest.New(t, mockOpts())

	mt.Run("maps documents", func(mt *mtest.T) {
		first, second := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "car_rental.bookings", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: first},
				{Key: "user_id", Value: "1"},
				{Key: "car_name", Value: "Tesla Model 3"},
				{Key: "price", Value: int32(267)},
				{Key: "status", Value: "Upcoming"},
			},
			bson.D{
				{Key: "_id", Value: second},
				{Key: "user_id", Value: "1"},
				{Key: "car_name", Value: "Audi A4"},
				{Key: "price", Value: 120.5},
				{Key: "status", Value: "Completed"},
			},
		))
		repo := NewBookingRepository(mt.DB)

		list, err := repo.ListByUser(context.Background(), "1")
		if err != nil {
			mt.Fatalf("ListByUser returned error: %v", err)
		}
		if len(list) != 2 {
			mt.Fatalf("expected 2 bookings, got %d", len(list))
		}
		if list[0].ID != first.Hex() || domain.Value(list[0].Price) != 267 || domain.Value(list[0].CarName) != "Tesla Model 3" {
			mt.Fatalf("unexpected first booking: %+v", list[0])
		}
		if list[1].ID != second.Hex() || domain.Value(list[1].Price) != 120.5 {
			mt.Fatalf("unexpected second booking: %+v", list[1])
		}
	})

	mt.Run("nulls and extra keys", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "car_rental.bookings", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: id},
				{Key: "user_id", Value: "1"},
				{Key: "price", Value: nil},
				{Key: "status", Value: "Upcoming"},
				{Key: "notes", Value: "window seat"},
			},
		))
		repo := NewBookingRepository(mt.DB)

		list, err := repo.ListByUser(context.Background(), "1")
		if err != nil || len(list) != 1 {
			mt.Fatalf("expected one booking, got %v %v", list, err)
		}
		if list[0].Price != nil {
			mt.Fatalf("expected null price, got %v", *list[0].Price)
		}
		if list[0].Extra["notes"] != "window seat" {
			mt.Fatalf("expected extra key, got %v", list[0].Extra)
		}
		if _, ok := list[0].Extra["_id"]; ok {
			mt.Fatalf("_id must map to ID, not Extra")
		}
	})

	mt.Run("empty", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "car_rental.bookings", mtest.FirstBatch))
		repo := NewBookingRepository(mt.DB)

		list, err := repo.ListByUser(context.Background(), "nobody")
		if err != nil || list == nil || len(list) != 0 {
			mt.Fatalf("expected empty non-nil list, got %v %v", list, err)
		}
	})
}

func TestBookingRepository_CreateAndCount(t *testing.T) {
	mt := mtest.New(t, mockOpts())

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewBookingRepository(mt.DB)

		b := &domain.Booking{
			UserID:  domain.Ptr("1"),
			CarName: domain.Ptr("Tesla Model 3"),
			Price:   domain.Ptr(267.0),
			Status:  domain.Ptr(domain.StatusUpcoming),
			Extra:   map[string]any{"notes": "window seat"},
		}
		if err := repo.Create(context.Background(), b); err != nil {
			mt.Fatalf("Create returned error: %v", err)
		}
		if b.ID == "" {
			mt.Fatalf("expected id to be set")
		}
	})

	mt.Run("count", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "car_rental.bookings", mtest.FirstBatch, bson.D{{Key: "n", Value: int32(3)}}))
		repo := NewBookingRepository(mt.DB)

		n, err := repo.Count(context.Background())
		if err != nil || n != 3 {
			mt.Fatalf("expected 3, got %d %v", n, err)
		}
	})

	mt.Run("count empty collection", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "car_rental.bookings", mtest.FirstBatch))
		repo := NewBookingRepository(mt.DB)

		n, err := repo.Count(context.Background())
		if err != nil || n != 0 {
			mt.Fatalf("expected 0, got %d %v", n, err)
		}
	})

	mt.Run("command error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 13, Message: "unauthorized", Name: "Unauthorized"}))
		repo := NewBookingRepository(mt.DB)

		if _, err := repo.Count(context.Background()); err == nil {
			mt.Fatalf("expected error")
		}
	})
}
