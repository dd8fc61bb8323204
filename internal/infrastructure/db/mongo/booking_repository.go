package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/99minutos/car-rental-api/internal/core/domain"
)

const collectionBookings = "bookings"

type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(collectionBookings)}
}

// mongoBooking writes nil fields as BSON null. Keys without a field land in
// Extra on read and are flattened into the document on write.
type mongoBooking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    *string            `bson:"user_id"`
	CarID     *string            `bson:"car_id"`
	CarName   *string            `bson:"car_name"`
	CarImage  *string            `bson:"car_image"`
	StartDate *string            `bson:"start_date"`
	EndDate   *string            `bson:"end_date"`
	Location  *string            `bson:"location"`
	Price     *float64           `bson:"price"`
	Status    *string            `bson:"status"`
	Extra     bson.M             `bson:",inline"`
}

func toMongoBooking(b *domain.Booking) mongoBooking {
	doc := mongoBooking{
		UserID:    b.UserID,
		CarID:     b.CarID,
		CarName:   b.CarName,
		CarImage:  b.CarImage,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Location:  b.Location,
		Price:     b.Price,
		Status:    b.Status,
	}
	if len(b.Extra) > 0 {
		doc.Extra = bson.M(b.Extra)
	}
	return doc
}

func (d mongoBooking) toDomain() *domain.Booking {
	b := &domain.Booking{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		CarID:     d.CarID,
		CarName:   d.CarName,
		CarImage:  d.CarImage,
		StartDate: d.StartDate,
		EndDate:   d.EndDate,
		Location:  d.Location,
		Price:     d.Price,
		Status:    d.Status,
	}
	if len(d.Extra) > 0 {
		b.Extra = map[string]any(d.Extra)
	}
	return b
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toMongoBooking(b))
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	b.ID = objectIDHex(res.InsertedID)
	return nil
}

// ListByUser returns every booking of userID in natural order.
func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoBooking
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}

	out := make([]*domain.Booking, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates the user_id index used by ListByUser.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "user_id", Value: 1}}})
	return err
}
