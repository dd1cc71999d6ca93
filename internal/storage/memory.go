package storage

import (
	"context"
	"slices"
	"sync"
	"time"
)

var _ DateCache = (*MemoryCache)(nil)

type MemoryCache struct {
	mu    sync.RWMutex
	dates []time.Time
	saved bool
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

func (c *MemoryCache) Load(context.Context) ([]time.Time, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.saved {
		return nil, ErrNotFound
	}
	return slices.Clone(c.dates), nil
}

func (c *MemoryCache) Save(_ context.Context, dates []time.Time) error {
	c.mu.Lock()
	c.dates = slices.Clone(dates)
	c.saved = true
	c.mu.Unlock()
	return nil
}
