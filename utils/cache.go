// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"routinely/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (routine documents live here).
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
	// ChatContextClient holds short-lived assistant conversation context.
	ChatContextClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
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

// InitRedis initializes every Redis client the service uses.
func InitRedis() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	ChatContextClient = newRedisClient(config.AppConfig.RedisChatCtxDB)
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	}
	return CacheClient
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	}
	return AuthCacheClient
}

// GetChatContextClient returns the Redis client for assistant context.
func GetChatContextClient() *redis.Client {
	if ChatContextClient == nil {
		ChatContextClient = newRedisClient(config.AppConfig.RedisChatCtxDB)
	}
	return ChatContextClient
}
