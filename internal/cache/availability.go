package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/silverhalide/studio-api/internal/config"
	domain "github.com/silverhalide/studio-api/internal/domain/booking"
)

const availabilityTTL = time.Minute

// AvailabilityCache keeps recent availability responses in Redis. Entries
// carry a per-studio version in their key, so invalidation is a single INCR
// and stale entries just age out.
type AvailabilityCache struct {
	rdb *redis.Client
}

// New returns a disabled (nil-client) cache when REDIS_URL is unset; every
// method is a no-op in that case.
func New(cfg *config.Config) *AvailabilityCache {
	if cfg.RedisURL == "" {
		return &AvailabilityCache{}
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Printf("cache: invalid REDIS_URL, cache disabled: %v", err)
		return &AvailabilityCache{}
	}

	return &AvailabilityCache{rdb: redis.NewClient(opt)}
}

func (c *AvailabilityCache) key(ctx context.Context, in domain.AvailabilityInput) string {
	ver, _ := c.rdb.Get(ctx, fmt.Sprintf("availability_ver:%d", in.StudioID)).Int64()
	return fmt.Sprintf(
		"availability:%d:%d:%s:%s:%s",
		in.StudioID,
		ver,
		in.Start.UTC().Format("2006-01-02"),
		in.End.UTC().Format("2006-01-02"),
		in.SessionType,
	)
}

func (c *AvailabilityCache) Get(ctx context.Context, in domain.AvailabilityInput) ([]domain.Slot, bool) {
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, c.key(ctx, in)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []domain.Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *AvailabilityCache) Set(ctx context.Context, in domain.AvailabilityInput, slots []domain.Slot) {
	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, c.key(ctx, in), raw, availabilityTTL).Err(); err != nil {
		log.Printf("cache: set failed: %v", err)
	}
}

// Invalidate bumps the studio's version so every cached range is bypassed.
func (c *AvailabilityCache) Invalidate(ctx context.Context, studioID uint) {
	if c.rdb == nil {
		return
	}

	if err := c.rdb.Incr(ctx, fmt.Sprintf("availability_ver:%d", studioID)).Err(); err != nil {
		log.Printf("cache: invalidate failed: %v", err)
	}
}
