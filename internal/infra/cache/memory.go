// Package cache keeps the last successfully read booking lists so that
// reads can be served when persistence is unavailable.
package cache

import (
	"context"
	"sync"

	"github.com/docaid/DocAid-BookingService/internal/domain"
)

// MemoryCache снимки в памяти процесса, без срока жизни
type MemoryCache struct {
	mu        sync.RWMutex
	snapshots map[string][]*domain.Booking
}

// NewMemoryCache создаёт пустой кэш
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{snapshots: make(map[string][]*domain.Booking)}
}

// Put сохраняет копию списка под ключом
func (c *MemoryCache) Put(ctx context.Context, key string, bookings []*domain.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshots[key] = cloneAll(bookings)
	return nil
}

// Get возвращает копию снимка или ErrMiss
func (c *MemoryCache) Get(ctx context.Context, key string) ([]*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot, ok := c.snapshots[key]
	if !ok {
		return nil, ErrMiss
	}
	return cloneAll(snapshot), nil
}

func cloneAll(bookings []*domain.Booking) []*domain.Booking {
	out := make([]*domain.Booking, len(bookings))
	for i, b := range bookings {
		out[i] = b.Clone()
	}
	return out
}
