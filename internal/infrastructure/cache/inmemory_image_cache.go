package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const defaultCleanupInterval = 30 * time.Second

type imageKey struct {
	propertyID uuid.UUID
	imageID    uuid.UUID
}

type imageEntry struct {
	data      []byte
	expiresAt time.Time
}

func (e imageEntry) isExpired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// InMemoryImageCache implements the image cache port in process memory.
// Entries do not survive restarts and are not shared between instances.
type InMemoryImageCache struct {
	mu      sync.RWMutex
	entries map[imageKey]imageEntry
	ttl     time.Duration
	now     func() time.Time
	stopCh  chan struct{}
	stopped int32

	hits   int64
	misses int64
}

// NewInMemoryImageCache creates a cache whose entries live for ttl and
// starts the background sweep of expired entries
func NewInMemoryImageCache(ttl time.Duration) *InMemoryImageCache {
	if ttl <= 0 {
		ttl = defaultImageTTL
	}
	c := &InMemoryImageCache{
		entries: make(map[imageKey]imageEntry),
		ttl:     ttl,
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}
	go c.cleanupLoop(defaultCleanupInterval)
	return c
}

// Get returns a copy of the cached bytes
func (c *InMemoryImageCache) Get(_ context.Context, propertyID, imageID uuid.UUID) ([]byte, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[imageKey{propertyID, imageID}]
	c.mu.RUnlock()

	if !ok || entry.isExpired(c.now()) {
		atomic.AddInt64(&c.misses, 1)
		return nil, false, nil
	}
	atomic.AddInt64(&c.hits, 1)
	return append([]byte(nil), entry.data...), true, nil
}

// Set stores a copy of data
func (c *InMemoryImageCache) Set(_ context.Context, propertyID, imageID uuid.UUID, data []byte) error {
	entry := imageEntry{
		data:      append([]byte(nil), data...),
		expiresAt: c.now().Add(c.ttl),
	}
	c.mu.Lock()
	c.entries[imageKey{propertyID, imageID}] = entry
	c.mu.Unlock()
	return nil
}

// Delete evicts one image
func (c *InMemoryImageCache) Delete(_ context.Context, propertyID, imageID uuid.UUID) error {
	c.mu.Lock()
	delete(c.entries, imageKey{propertyID, imageID})
	c.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired ones included
func (c *InMemoryImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetStats returns cache hit and miss counts
func (c *InMemoryImageCache) GetStats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// Close stops the cleanup goroutine
func (c *InMemoryImageCache) Close() error {
	if atomic.CompareAndSwapInt32(&c.stopped, 0, 1) {
		close(c.stopCh)
	}
	return nil
}

func (c *InMemoryImageCache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.removeExpired()
		}
	}
}

func (c *InMemoryImageCache) removeExpired() {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.entries {
		if e.isExpired(now) {
			delete(c.entries, k)
		}
	}
}
