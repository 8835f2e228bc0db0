// File: utils/cache.go
package utils

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"playdash/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the client for the raw spreadsheet row cache.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client (using DB from AppConfig).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// CacheGetJSON loads a cached value into dest. Returns false on miss or decode failure.
func CacheGetJSON(ctx context.Context, client *redis.Client, key string, dest any) bool {
	raw, err := client.Get(ctx, key).Result()
	if err != nil || raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		// A corrupt entry is treated as a miss and overwritten by the caller.
		return false
	}
	return true
}

// CacheSetJSON stores value under key with the given TTL. Failures are logged, not returned;
// the cache is best-effort and the caller always holds the fresh value.
func CacheSetJSON(ctx context.Context, client *redis.Client, key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		GetLogger().Sugar().Warnf("cache: failed to marshal %s: %v", key, err)
		return
	}
	if err := client.Set(ctx, key, data, ttl).Err(); err != nil {
		GetLogger().Sugar().Warnf("cache: failed to set %s: %v", key, err)
	}
}
