package repository

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemoryCache is a bounded in-process CacheRepository. Entries expire after
// ttl and the least recently used entry is evicted once capacity is reached.
type MemoryCache struct {
	lru *expirable.LRU[string, string]
}

// NewMemoryCache creates a cache holding at most capacity entries. A zero ttl
// keeps entries until they are evicted.
func NewMemoryCache(capacity int, ttl time.Duration) (*MemoryCache, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("memory cache capacity must be positive, got %d", capacity)
	}
	return &MemoryCache{lru: expirable.NewLRU[string, string](capacity, nil, ttl)}, nil
}

func (m *MemoryCache) Get(key string) (string, bool) {
	return m.lru.Get(key)
}

func (m *MemoryCache) Set(key string, value string) error {
	m.lru.Add(key, value)
	return nil
}

// Len reports the number of live entries.
func (m *MemoryCache) Len() int {
	return m.lru.Len()
}
