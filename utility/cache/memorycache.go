package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache ... byte oriented key value cache shared by the in-memory and redis backends
type Cache interface {
	Set(key string, value []byte)
	Get(key string) ([]byte, bool)
}

// Memory ...
type Memory struct {
	Cache *cache.Cache
}

// Initialize ...
func Initialize(expiry time.Duration, purgeInterval time.Duration) *Memory {
	newCache := cache.New(expiry, purgeInterval)
	memoryCache := Memory{
		Cache: newCache,
	}
	return &memoryCache
}

// Set ...
func (memory *Memory) Set(key string, value []byte) {
	memory.Cache.Set(key, value, cache.DefaultExpiration)
}

// Get ...
func (memory *Memory) Get(key string) ([]byte, bool) {
	cacheValue, found := memory.Cache.Get(key)
	if !found {
		return nil, false
	}
	value, ok := cacheValue.([]byte)
	return value, ok
}
