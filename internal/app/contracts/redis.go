package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	// Get returns the raw JSON payload, or empty string when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}
