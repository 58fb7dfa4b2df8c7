package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/learngermanghana/sedifex-stores/internal/domain"
)

// RedisGeocodeCache is an optional shared cache tier for deployments where
// several instances serve the same directory. Failures are soft: a Get
// error reads as a miss and a Put error is logged and dropped, so the
// resolver falls through to the record field or the external lookup rather
// than failing the listing.
type RedisGeocodeCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client) *RedisGeocodeCache {
	// No TTL: geocode results for a fixed address do not go stale.
	return &RedisGeocodeCache{client: client, prefix: "geocode:"}
}

func (c *RedisGeocodeCache) Get(ctx context.Context, address string) (domain.Coordinates, bool) {
	val, err := c.client.Get(ctx, c.prefix+address).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("redis geocode cache get failed: %v", err)
		}
		return domain.Coordinates{}, false
	}

	var coords domain.Coordinates
	if err := json.Unmarshal([]byte(val), &coords); err != nil {
		log.Printf("redis geocode cache decode failed: key=%s err=%v", c.prefix+address, err)
		return domain.Coordinates{}, false
	}

	return coords, true
}

func (c *RedisGeocodeCache) Put(ctx context.Context, address string, coords domain.Coordinates) {
	if strings.TrimSpace(address) == "" {
		return
	}

	b, err := json.Marshal(coords)
	if err != nil {
		log.Printf("redis geocode cache encode failed: %v", err)
		return
	}

	if err := c.client.Set(ctx, c.prefix+address, b, c.ttl).Err(); err != nil {
		log.Printf("redis geocode cache put failed: %v", err)
	}
}
