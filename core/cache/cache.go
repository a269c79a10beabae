package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Cache is a thread-safe in-memory key-value store with TTL and tag
// invalidation. Used for presentation caching (picker menus, rendered
// partials) when Redis is not configured. On-hand balances are never
// cached: every aggregate read re-derives from the ledger.
type Cache struct {
	m        sync.Map
	tagIndex sync.Map // tag string -> map[string]struct{}
}

var (
	once     sync.Once
	instance *Cache
)

// GetInstance returns the process-wide cache.
func GetInstance() *Cache {
	once.Do(func() {
		instance = New()
	})
	return instance
}

func New() *Cache {
	return &Cache{}
}

type item struct {
	value     interface{}
	expiresAt int64 // UnixNano; 0 means no expiration
}

// Set stores a value with an optional TTL in seconds (0 = no expiry)
// and optional tags for bulk invalidation.
func (c *Cache) Set(key string, value interface{}, ttl int64, tags []string) {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(time.Duration(ttl) * time.Second).UnixNano()
	}
	c.m.Store(key, item{value: value, expiresAt: expiresAt})
	for _, tag := range tags {
		keysAny, _ := c.tagIndex.LoadOrStore(tag, &sync.Map{})
		keysAny.(*sync.Map).Store(key, struct{}{})
	}
}

// Get returns the value for key if present and not expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		return nil, false
	}
	it := v.(item)
	if it.expiresAt > 0 && time.Now().UnixNano() > it.expiresAt {
		c.m.Delete(key)
		return nil, false
	}
	return it.value, true
}

// Delete removes a key.
func (c *Cache) Delete(key string) {
	c.m.Delete(key)
}

// DeleteByTag removes every key associated with the tag.
func (c *Cache) DeleteByTag(tag string) {
	keysAny, ok := c.tagIndex.Load(tag)
	if !ok {
		return
	}
	keysAny.(*sync.Map).Range(func(key, _ interface{}) bool {
		c.m.Delete(key)
		return true
	})
	c.tagIndex.Delete(tag)
}

// Key builds a composite cache key from parts.
func Key(parts ...interface{}) string {
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = fmt.Sprintf("%v", p)
	}
	return strings.Join(strs, "|")
}
