package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis builds a redis client when an address is configured. Returns nil
// when addr is empty so callers can run without a cache.
func NewRedis(addr, password string) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}
