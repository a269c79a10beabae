package config

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the optional shared Redis client. Nil when Redis is
// not configured; callers fall back to the in-process cache.
var RedisClient *redis.Client

func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		RedisClient = nil
		return
	}
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
		DB:       0,
	})
}

func RedisCtx() context.Context {
	return context.Background()
}
