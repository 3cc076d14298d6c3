package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zanzibar-explore/tours-backend/config"
	"github.com/zanzibar-explore/tours-backend/internal/domain"
)

// RedisCache is a read-through cache for catalog reads. Catalog data is
// immutable after seed, so entries only ever expire, never invalidate.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    ttl,
	}
}

func (c *RedisCache) GetTours(ctx context.Context) ([]domain.Tour, error) {
	var tours []domain.Tour
	if err := c.get(ctx, toursKey(), &tours); err != nil {
		return nil, err
	}
	return tours, nil
}

func (c *RedisCache) SetTours(ctx context.Context, tours []domain.Tour) error {
	return c.set(ctx, toursKey(), tours)
}

func (c *RedisCache) GetVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	var vehicles []domain.Vehicle
	if err := c.get(ctx, vehiclesKey(), &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (c *RedisCache) SetVehicles(ctx context.Context, vehicles []domain.Vehicle) error {
	return c.set(ctx, vehiclesKey(), vehicles)
}

func (c *RedisCache) GetGallery(ctx context.Context) ([]domain.GalleryImage, error) {
	var images []domain.GalleryImage
	if err := c.get(ctx, galleryKey(), &images); err != nil {
		return nil, err
	}
	return images, nil
}

func (c *RedisCache) SetGallery(ctx context.Context, images []domain.GalleryImage) error {
	return c.set(ctx, galleryKey(), images)
}

func (c *RedisCache) get(ctx context.Context, key string, dst interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, dst)
}

func (c *RedisCache) set(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, c.ttl).Err()
}

func toursKey() string    { return "cache:tours" }
func vehiclesKey() string { return "cache:vehicles" }
func galleryKey() string  { return "cache:gallery" }
