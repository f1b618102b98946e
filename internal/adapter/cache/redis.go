package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kalakal/kalakal-api/internal/adapter/config"
	"github.com/kalakal/kalakal-api/internal/core/domain"
	"github.com/redis/go-redis/v9"
)

// TrackingCache keeps tracking read-model entries in redis under a TTL. It
// is injected where needed rather than shared as a package-level singleton.
type TrackingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTrackingCache(ctx context.Context, conf *config.Cache) (*TrackingCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &TrackingCache{client: client, ttl: conf.TTL}, nil
}

func trackingKey(orderID uuid.UUID) string {
	return fmt.Sprintf("tracking:%s", orderID)
}

func (c *TrackingCache) GetTracking(ctx context.Context, orderID uuid.UUID) (*domain.OrderTracking, error) {
	data, err := c.client.Get(ctx, trackingKey(orderID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	tracking := domain.OrderTracking{}
	if err := json.Unmarshal(data, &tracking); err != nil {
		return nil, err
	}
	return &tracking, nil
}

func (c *TrackingCache) SetTracking(ctx context.Context, tracking *domain.OrderTracking) error {
	data, err := json.Marshal(tracking)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, trackingKey(tracking.OrderID), data, c.ttl).Err()
}

func (c *TrackingCache) InvalidateTracking(ctx context.Context, orderID uuid.UUID) error {
	return c.client.Del(ctx, trackingKey(orderID)).Err()
}
