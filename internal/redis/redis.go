package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Rdb *redis.Client

func InitRedis(redisAddress string, redisUsername string, redisPassword string) {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     redisAddress,
		Username: redisUsername,
		Password: redisPassword,
		DB:       0,
	})
}

// Ready reports whether a client was initialized; callers treat Redis as a
// best-effort cache and skip it when absent (tests, degraded boots).
func Ready() bool {
	return Rdb != nil
}

func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) {
	if !Ready() {
		return
	}
	if err := Rdb.Set(ctx, key, value, expiration).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("redis set failed")
	}
}

// Get returns the cached string value, or "" when missing or Redis is down.
func Get(ctx context.Context, key string) string {
	if !Ready() {
		return ""
	}
	val, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Error().Err(err).Str("key", key).Msg("redis get failed")
		}
		return ""
	}
	return val
}

func Del(ctx context.Context, keys ...string) {
	if !Ready() || len(keys) == 0 {
		return
	}
	if err := Rdb.Del(ctx, keys...).Err(); err != nil {
		log.Error().Err(err).Strs("keys", keys).Msg("redis del failed")
	}
}

// DeviceSyncKey names the cached sync response for a device.
func DeviceSyncKey(deviceID int) string {
	return fmt.Sprintf("playout:device:%d", deviceID)
}

// TryLock grabs a best-effort SETNX lock. It is advisory only — callers must
// stay correct without it.
func TryLock(ctx context.Context, key string, ttl time.Duration) bool {
	if !Ready() {
		return true
	}
	ok, err := Rdb.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("redis setnx failed")
		return true
	}
	return ok
}
