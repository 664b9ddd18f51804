package cache

import (
	"context"
	"testing"
	"time"

	"github.com/itbasis/go-clock"
)

func TestMemory_getAndExpire(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMock()
	clk.Set(time.Date(2025, 9, 7, 13, 0, 0, 0, time.UTC))
	c := NewMemory(clk)

	if _, found, err := c.Get(ctx, "missing"); found || err != nil {
		t.Fatalf("expected a miss, got found=%v err=%v", found, err)
	}

	if err := c.Set(ctx, "roster", []byte("data"), time.Minute); err != nil {
		t.Fatalf("error setting value: %v", err)
	}

	b, found, err := c.Get(ctx, "roster")
	if err != nil || !found || string(b) != "data" {
		t.Fatalf("expected a hit with 'data', got '%s', found=%v, err=%v", b, found, err)
	}

	clk.Add(59 * time.Second)
	if _, found, _ := c.Get(ctx, "roster"); !found {
		t.Errorf("entry should still be cached")
	}

	clk.Add(time.Second)
	if _, found, _ := c.Get(ctx, "roster"); found {
		t.Errorf("entry should have expired")
	}
}

func TestMemory_zeroTTLRemoves(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(clock.NewMock())

	c.Set(ctx, "k", []byte("v"), time.Hour)
	c.Set(ctx, "k", []byte("v2"), 0)

	if _, found, _ := c.Get(ctx, "k"); found {
		t.Errorf("a zero ttl should remove the entry")
	}
}
