package cache

import (
	"context"
	"sync"
	"time"

	"github.com/cartscope/backend/internal/domain"
)

// snapshotEntry holds one catalog snapshot with its expiration.
type snapshotEntry struct {
	Products   []domain.Product
	Expiration time.Time
}

// MemoryCache is a thread-safe in-memory catalog snapshot cache with
// TTL support.
type MemoryCache struct {
	data  map[string]snapshotEntry
	mutex sync.RWMutex
}

// NewMemoryCache creates a new in-memory snapshot cache
func NewMemoryCache() *MemoryCache {
	cache := &MemoryCache{
		data: make(map[string]snapshotEntry),
	}

	// Cleanup goroutine removes expired snapshots every 10 minutes
	go cache.cleanupExpired()

	return cache
}

// Get retrieves a snapshot from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]domain.Product, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entry, exists := c.data[key]
	if !exists {
		return nil, domain.ErrCacheMiss
	}

	if time.Now().After(entry.Expiration) {
		return nil, domain.ErrCacheMiss
	}

	return entry.Products, nil
}

// Set stores a snapshot in the cache with TTL. The slice is copied so
// later mutations by the caller cannot leak into cached reads.
func (c *MemoryCache) Set(ctx context.Context, key string, products []domain.Product, ttl time.Duration) error {
	stored := make([]domain.Product, len(products))
	copy(stored, products)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = snapshotEntry{
		Products:   stored,
		Expiration: time.Now().Add(ttl),
	}

	return nil
}

// Delete removes a snapshot from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// Exists checks if a key exists in the cache and is not expired
func (c *MemoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entry, exists := c.data[key]
	if !exists {
		return false, nil
	}

	if time.Now().After(entry.Expiration) {
		return false, nil
	}

	return true, nil
}

// cleanupExpired removes expired snapshots from the cache periodically
func (c *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := time.Now()
		for key, entry := range c.data {
			if now.After(entry.Expiration) {
				delete(c.data, key)
			}
		}
		c.mutex.Unlock()
	}
}

// Size returns the current number of cached snapshots (for debugging/monitoring)
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// Clear removes all snapshots from the cache
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data = make(map[string]snapshotEntry)
}
