package mockcache

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type Cache struct {
	mock.Mock
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := c.Called(ctx, key)

	var b []byte
	if args.Get(0) != nil {
		b = args.Get(0).([]byte)
	}

	return b, args.Bool(1), args.Error(2)
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := c.Called(ctx, key, value, ttl)
	return args.Error(0)
}
