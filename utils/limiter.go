package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// AllowRequest counts a request for key in the current fixed window and
// reports whether it stays within limit.
func AllowRequest(ctx context.Context, rdb *redis.Client, key string, limit int, window time.Duration) (bool, error) {
	bucket := time.Now().UnixNano() / int64(window)
	windowKey := fmt.Sprintf("ratelimit_%s_%d", key, bucket)

	pipe := rdb.TxPipeline()
	incr := pipe.Incr(ctx, windowKey)
	pipe.Expire(ctx, windowKey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= int64(limit), nil
}
