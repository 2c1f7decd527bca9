package utils

import (
	"context"
	"log"
	"time"

	"studyhub/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
	// PendingCacheClient holds in-flight registration records.
	PendingCacheClient *redis.Client
)

func newClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes all Redis clients used by the service.
func InitRedis() {
	CacheClient = newClient(config.AppConfig.RedisCacheDB)
	AuthCacheClient = newClient(config.AppConfig.RedisAuthDB)
	PendingCacheClient = newClient(config.AppConfig.RedisPendingDB)
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newClient(config.AppConfig.RedisCacheDB)
	}
	return CacheClient
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newClient(config.AppConfig.RedisAuthDB)
	}
	return AuthCacheClient
}

// GetPendingCacheClient returns the Redis client backing the pending-registration store.
func GetPendingCacheClient() *redis.Client {
	if PendingCacheClient == nil {
		PendingCacheClient = newClient(config.AppConfig.RedisPendingDB)
	}
	return PendingCacheClient
}
