package cache

import (
	"context"
	"sync"
	"time"
)

// simpleCache is an in-memory Cache for development and tests.
type simpleCache struct {
	mu      sync.RWMutex
	entries map[string]simpleEntry
	done    chan struct{}
	once    sync.Once
}

type simpleEntry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

// NewSimpleCache creates an in-memory cache with periodic cleanup of
// expired entries.
func NewSimpleCache() Cache {
	c := &simpleCache{
		entries: make(map[string]simpleEntry),
		done:    make(chan struct{}),
	}
	go c.cleanupLoop()
	return c
}

func (c *simpleCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, nil
	}
	return entry.value, nil
}

func (c *simpleCache) Set(_ context.Context, key string, value []byte, expiration time.Duration) error {
	entry := simpleEntry{value: value}
	if expiration > 0 {
		entry.expiresAt = time.Now().Add(expiration)
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
	return nil
}

func (c *simpleCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

func (c *simpleCache) Close() error {
	c.once.Do(func() { close(c.done) })
	return nil
}

func (c *simpleCache) Health(context.Context) error {
	return nil
}

func (c *simpleCache) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case now := <-ticker.C:
			c.mu.Lock()
			for key, entry := range c.entries {
				if !entry.expiresAt.IsZero() && now.After(entry.expiresAt) {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		}
	}
}
