package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/don-Savage01/universe-ofhair-sub001/internal/database"
)

var ctx = context.Background()

// ProductListKey caches the full product list served on the storefront.
const ProductListKey = "products:all"

// ProductListTTL bounds staleness when an invalidation is missed.
const ProductListTTL = time.Hour

// --- Product cache ---

// GetProductList returns the cached product list JSON, or "" on miss.
func GetProductList() string {
	val, err := database.Redis.Get(ctx, ProductListKey).Result()
	if err != nil {
		return ""
	}
	return val
}

// SetProductList stores the serialized product list.
func SetProductList(data []byte) {
	if err := database.Redis.Set(ctx, ProductListKey, data, ProductListTTL).Err(); err != nil {
		log.Printf("⚠️ Product cache write failed: %v", err)
	}
}

// InvalidateProductList drops the cached list after any product write.
func InvalidateProductList() {
	if err := database.Redis.Del(ctx, ProductListKey).Err(); err != nil {
		log.Printf("⚠️ Product cache invalidation failed: %v", err)
	}
}

// --- Generic cache ---

func SetCache(key string, value interface{}, duration time.Duration) error {
	return database.Redis.Set(ctx, key, value, duration).Err()
}

func GetCache(key string) (string, error) {
	return database.Redis.Get(ctx, key).Result()
}

func DeleteCache(key string) error {
	return database.Redis.Del(ctx, key).Err()
}

// --- Rate limiting ---

// IncrementRateLimit bumps a fixed-window counter and returns its value.
func IncrementRateLimit(key string, window time.Duration) (int64, error) {
	pipe := database.Redis.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	_, err := pipe.Exec(ctx)
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// GetRateLimit reads the current counter, 0 when absent.
func GetRateLimit(key string) (int64, error) {
	val, err := database.Redis.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return val, err
}

// RateLimitKey builds a per-scope, per-client counter key.
func RateLimitKey(scope, client string) string {
	return fmt.Sprintf("ratelimit:%s:%s", scope, client)
}
