package cache

import (
	"context"
	"time"
)

// Cache holds JSON snapshots of the singleton documents (the
// "portfolio:personal" and "portfolio:social" keys). A miss is never an
// error; callers fall through to the document store.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
