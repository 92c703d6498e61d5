// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"letsheal/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient backs the Redis session store.
	SessionCacheClient *redis.Client
	// LockCacheClient backs the booking in-flight guard.
	LockCacheClient *redis.Client
)

func newRedisClient(db int, name string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", name, err)
	}
	return client
}

// GetSessionCacheClient returns the Redis client for stored sessions.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB, "Session")
	}
	return SessionCacheClient
}

// GetLockCacheClient returns the Redis client for submission locks.
func GetLockCacheClient() *redis.Client {
	if LockCacheClient == nil {
		LockCacheClient = newRedisClient(config.AppConfig.RedisLockDB, "Lock")
	}
	return LockCacheClient
}
