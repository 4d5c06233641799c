package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// VerifiedValueCache implements ports.VerifiedValueCache using Redis. Only
// verified cleartext ever enters the cache; Postgres stays the source of
// truth, the cache just spares the DB a read on repeat verifications.
type VerifiedValueCache struct {
	client *goredis.Client
	prefix string
}

// NewVerifiedValueCache creates a new Redis-backed verified-value cache.
func NewVerifiedValueCache(client *goredis.Client) *VerifiedValueCache {
	return &VerifiedValueCache{
		client: client,
		prefix: "decryption:verified:",
	}
}

// Get retrieves cached cleartext values by record ID.
// Returns nil, nil if the key does not exist.
func (c *VerifiedValueCache) Get(ctx context.Context, recordID uuid.UUID) ([]int64, error) {
	raw, err := c.client.Get(ctx, c.prefix+recordID.String()).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis verified-value get: %w", err)
	}

	var values []int64
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("redis verified-value decode: %w", err)
	}
	return values, nil
}

// Set stores the cleartext values with TTL.
func (c *VerifiedValueCache) Set(ctx context.Context, recordID uuid.UUID, values []int64, ttl time.Duration) error {
	raw, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("redis verified-value encode: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+recordID.String(), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis verified-value set: %w", err)
	}
	return nil
}
