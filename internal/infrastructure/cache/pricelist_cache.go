package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/feedygotech/laundry-backend/internal/application/pricing"
	"github.com/feedygotech/laundry-backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const priceListKeyPrefix = "pricelist:customer:"

// DefaultPriceListTTL bounds staleness if an invalidation is ever lost
const DefaultPriceListTTL = 24 * time.Hour

// RedisPriceListCache implements pricing.PriceListCache using Redis.
// Only customer-audience displays of published price lists are stored;
// the publisher invalidates on every publish and unpublish.
type RedisPriceListCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ pricing.PriceListCache = (*RedisPriceListCache)(nil)

// NewRedisPriceListCache connects to Redis and returns a price list cache
func NewRedisPriceListCache(cfg *config.RedisConfig) (*RedisPriceListCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisPriceListCache{client: client, ttl: DefaultPriceListTTL}, nil
}

// NewRedisPriceListCacheWithClient wraps an existing Redis client,
// useful for tests or when sharing a client across components
func NewRedisPriceListCacheWithClient(client *redis.Client, ttl time.Duration) *RedisPriceListCache {
	if ttl <= 0 {
		ttl = DefaultPriceListTTL
	}
	return &RedisPriceListCache{client: client, ttl: ttl}
}

// Get returns the cached customer display, or ok=false on a miss
func (c *RedisPriceListCache) Get(ctx context.Context, serviceID uuid.UUID) (*pricing.ServiceDisplay, bool, error) {
	data, err := c.client.Get(ctx, priceListKey(serviceID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read price list cache: %w", err)
	}

	var display pricing.ServiceDisplay
	if err := json.Unmarshal(data, &display); err != nil {
		// stale or corrupt payload reads as a miss
		return nil, false, nil
	}
	return &display, true, nil
}

// Set stores the customer display with the configured TTL
func (c *RedisPriceListCache) Set(ctx context.Context, serviceID uuid.UUID, display *pricing.ServiceDisplay) error {
	data, err := json.Marshal(display)
	if err != nil {
		return fmt.Errorf("failed to marshal price list display: %w", err)
	}
	if err := c.client.Set(ctx, priceListKey(serviceID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write price list cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached display for a service
func (c *RedisPriceListCache) Invalidate(ctx context.Context, serviceID uuid.UUID) error {
	if err := c.client.Del(ctx, priceListKey(serviceID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate price list cache: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisPriceListCache) Close() error {
	return c.client.Close()
}

func priceListKey(serviceID uuid.UUID) string {
	return priceListKeyPrefix + serviceID.String()
}
