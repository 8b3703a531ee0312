package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Eursukkul/humorshub/internal/models"
	"github.com/redis/go-redis/v9"
)

const venueStatusKey = "cache:venue:status"

// VenueStatusCache keeps the last computed venue status in Redis. A miss is
// reported as (nil, nil).
type VenueStatusCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewVenueStatusCache(client *redis.Client, ttl time.Duration) *VenueStatusCache {
	return &VenueStatusCache{client: client, ttl: ttl}
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
}

func (c *VenueStatusCache) Get(ctx context.Context) (*models.VenueStatus, error) {
	data, err := c.client.Get(ctx, venueStatusKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var status models.VenueStatus
	if err := json.Unmarshal(data, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *VenueStatusCache) Set(ctx context.Context, status models.VenueStatus) error {
	payload, err := json.Marshal(status)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, venueStatusKey, payload, c.ttl).Err()
}

func (c *VenueStatusCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, venueStatusKey).Err()
}
