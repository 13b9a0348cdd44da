package config

import (
	"context"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns (nil, nil) when no Redis address is configured;
// callers fall back to the noop cache in that case.
func ConnectRedis(ctx context.Context) (*redis.Client, error) {
	val := os.Getenv("REDIS_ADDR")
	if val == "" {
		val = os.Getenv("REDIS_URL")
	}
	if val == "" {
		return nil, nil
	}

	var client *redis.Client
	if strings.HasPrefix(val, "redis://") || strings.HasPrefix(val, "rediss://") {
		opt, err := redis.ParseURL(val)
		if err != nil {
			return nil, err
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: val})
	}

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, err
	}
	return client, nil
}
