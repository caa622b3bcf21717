package repository

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheKey(t *testing.T) {
	body := []byte(`{"budget":"100"}`)

	k1 := CacheKey("cards", body)
	assert.True(t, strings.HasPrefix(k1, "cardopt:cards:"))
	assert.Equal(t, k1, CacheKey("cards", body))
	assert.NotEqual(t, k1, CacheKey("cards", []byte(`{"budget":"101"}`)))
	assert.NotEqual(t, k1, CacheKey("compare", body))

	march := CacheKey("compare", body, "2026-03")
	april := CacheKey("compare", body, "2026-04")
	assert.NotEqual(t, march, april)
	assert.Equal(t, march, CacheKey("compare", body, "2026-03"))
}

func TestMockCache(t *testing.T) {
	c := NewMockCache()
	_, ok := c.Get("missing")
	assert.False(t, ok)

	require.NoError(t, c.Set("k", "v"))
	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
	assert.Equal(t, 1, c.Len())
}

func TestMockCacheConcurrent(t *testing.T) {
	c := NewMockCache()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := CacheKey("cards", []byte{byte(i)})
			_ = c.Set(key, "x")
			_, _ = c.Get(key)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 16, c.Len())
}

func TestRedisCacheImplementsRepository(t *testing.T) {
	var repo CacheRepository = NewRedisCache("127.0.0.1:0", time.Minute)
	assert.NotNil(t, repo)
	require.NoError(t, repo.(*RedisCache).Close())
}

func TestMemoryCacheExpires(t *testing.T) {
	c, err := NewMemoryCache(8, 50*time.Millisecond)
	require.NoError(t, err)

	require.NoError(t, c.Set("k", "v"))
	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)

	time.Sleep(150 * time.Millisecond)
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestMemoryCacheEvictsOldest(t *testing.T) {
	c, err := NewMemoryCache(2, time.Hour)
	require.NoError(t, err)

	require.NoError(t, c.Set("a", "1"))
	require.NoError(t, c.Set("b", "2"))
	_, _ = c.Get("a")
	require.NoError(t, c.Set("c", "3"))

	_, ok := c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)

	for i := 0; i < 1000; i++ {
		require.NoError(t, c.Set(CacheKey("cards", []byte{byte(i), byte(i >> 8)}), "x"))
	}
	assert.Equal(t, 2, c.Len())
}

func TestNewMemoryCacheRejectsZeroCapacity(t *testing.T) {
	_, err := NewMemoryCache(0, time.Minute)
	assert.Error(t, err)
}
