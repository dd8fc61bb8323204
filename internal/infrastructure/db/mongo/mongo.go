package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Store owns the shared client pool and the selected database. It is built
// once at startup and closed on shutdown.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes a MongoDB client and verifies connectivity with a ping.
// A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Free-form booking keys decode nested documents as maps.
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Store{client: client, db: client.Database(cfg.Database)}, nil
}

// Database returns the selected database handle.
func (s *Store) Database() *mongo.Database {
	return s.db
}

// Ping checks that the server answers commands on the selected database.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

// EnsureIndexes creates the indexes of every collection the store serves.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	if err := NewAccountRepository(s.db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("accounts indexes: %w", err)
	}
	if err := NewBookingRepository(s.db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("bookings indexes: %w", err)
	}
	return nil
}

// Close disconnects the client pool.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func objectIDHex(id any) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}
