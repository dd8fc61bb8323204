package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while it still holds our token, so an
// expired lock re-acquired by another instance is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// SeedLock is a single-holder lock backed by SET NX with a TTL.
type SeedLock struct {
	client *redis.Client
	token  string
}

// NewSeedLock creates a SeedLock with a random holder token.
func NewSeedLock(client *redis.Client) (*SeedLock, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("seed lock token: %w", err)
	}
	return &SeedLock{client: client, token: hex.EncodeToString(b)}, nil
}

// Acquire reports whether the lock was taken. It expires after ttl.
func (l *SeedLock) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, key, l.token, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("seed lock acquire: %w", err)
	}
	return ok, nil
}

func (l *SeedLock) Release(ctx context.Context, key string) error {
	if err := releaseScript.Run(ctx, l.client, []string{key}, l.token).Err(); err != nil {
		return fmt.Errorf("seed lock release: %w", err)
	}
	return nil
}
