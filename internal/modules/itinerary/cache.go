// README: Per-destination aggregation cache backed by Redis.
package itinerary

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	destKeyPrefix = "itinerary:dest:%s"
	destCacheTTL  = 24 * time.Hour
)

// Cache holds enriched destination records between requests. Every failure
// is treated as a miss; the cache can never fail an aggregation.
type Cache struct {
	redis *redis.Client
}

func NewCache(redis *redis.Client) *Cache {
	return &Cache{redis: redis}
}

func destKey(name string) string {
	return fmt.Sprintf(destKeyPrefix, strings.ToLower(strings.TrimSpace(name)))
}

func (c *Cache) GetDestination(ctx context.Context, name string) (*EnrichedDestination, bool) {
	raw, err := c.redis.Get(ctx, destKey(name)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("itinerary: cache read for %q failed: %v", name, err)
		return nil, false
	}

	var e EnrichedDestination
	if err := json.Unmarshal(raw, &e); err != nil {
		log.Printf("itinerary: cache entry for %q is corrupt: %v", name, err)
		return nil, false
	}
	return &e, true
}

func (c *Cache) SetDestination(ctx context.Context, name string, e EnrichedDestination) {
	raw, err := json.Marshal(e)
	if err != nil {
		log.Printf("itinerary: cache encode for %q failed: %v", name, err)
		return
	}
	if err := c.redis.Set(ctx, destKey(name), raw, destCacheTTL).Err(); err != nil {
		log.Printf("itinerary: cache write for %q failed: %v", name, err)
	}
}
