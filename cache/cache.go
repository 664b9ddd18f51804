// Package cache stores raw upstream responses for a limited time.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per entry expiry. A miss is reported with
// found == false and a nil error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
