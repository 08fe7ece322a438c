package Memo

import (
	"sync"
	"time"
)

// Cache memoizes expensive reads (the dashboard counters) for a TTL. The
// cron refresher overwrites entries with Put; handlers read through Get.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
}

type entry struct {
	value   interface{}
	expires time.Time
}

func New() *Cache {
	return &Cache{entries: make(map[string]entry)}
}

// Get returns the cached value for key, computing and storing it when the
// entry is absent or expired. A failed compute is not cached.
func (c *Cache) Get(key string, ttl time.Duration, compute func() (interface{}, error)) (interface{}, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && time.Now().Before(e.expires) {
		c.mu.Unlock()
		return e.value, nil
	}
	c.mu.Unlock()

	value, err := compute()
	if err != nil {
		return nil, err
	}
	c.Put(key, value, ttl)
	return value, nil
}

func (c *Cache) Put(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expires: time.Now().Add(ttl)}
}

func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

var Shared = New()
