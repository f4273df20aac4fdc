// File: utils/cache.go
package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"management/config"

	"github.com/go-redis/redis/v8"
)

// NewAuthCacheClient connects the Redis client used for authorization caching.
// It returns nil when no Redis address is configured.
func NewAuthCacheClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (Auth Cache): %w", err)
	}
	return client, nil
}

// StaffVerdict is the cached outcome of authorizing a bearer token.
type StaffVerdict struct {
	Subject string `json:"sub,omitempty"`
	IsStaff bool   `json:"staff"`
}

// RedisVerdictCache remembers staff verdicts per token hash.
type RedisVerdictCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// Get returns the cached verdict and whether one was found.
func (c *RedisVerdictCache) Get(ctx context.Context, tokenHash string) (StaffVerdict, bool, error) {
	var verdict StaffVerdict
	raw, err := c.Client.Get(ctx, AuthCachePrefix+tokenHash).Bytes()
	if errors.Is(err, redis.Nil) {
		return verdict, false, nil
	}
	if err != nil {
		return verdict, false, err
	}
	if err := json.Unmarshal(raw, &verdict); err != nil {
		return verdict, false, fmt.Errorf("corrupt verdict for %s: %w", tokenHash, err)
	}
	return verdict, true, nil
}

// Set stores a verdict. The entry never outlives the token itself.
func (c *RedisVerdictCache) Set(ctx context.Context, tokenHash string, verdict StaffVerdict, tokenExpiry time.Time) error {
	ttl := c.TTL
	if !tokenExpiry.IsZero() {
		if remaining := time.Until(tokenExpiry); remaining < ttl {
			ttl = remaining
		}
	}
	if ttl <= 0 {
		return nil
	}
	raw, err := json.Marshal(verdict)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, AuthCachePrefix+tokenHash, raw, ttl).Err()
}
