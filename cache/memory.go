package cache

import (
	"context"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
)

type entry struct {
	value   []byte
	expires time.Time
}

// Memory is an in process Cache, used when no redis server is configured.
type Memory struct {
	clock   clock.Clock
	mu      sync.Mutex
	entries map[string]entry
}

func NewMemory(clock clock.Clock) *Memory {
	return &Memory{
		clock:   clock,
		entries: make(map[string]entry),
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, found := m.entries[key]
	if !found {
		return nil, false, nil
	}
	if !m.clock.Now().Before(e.expires) {
		delete(m.entries, key)
		return nil, false, nil
	}
	return e.value, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ttl <= 0 {
		delete(m.entries, key)
		return nil
	}

	m.entries[key] = entry{
		value:   value,
		expires: m.clock.Now().Add(ttl),
	}
	return nil
}
