package cache

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rentdesk/rentdesk/internal/logger"
)

// InMemoryCache is a process-local cache backed by go-cache
type InMemoryCache struct {
	store *gocache.Cache
	log   *logger.Logger
}

var (
	defaultCache *InMemoryCache
	initOnce     sync.Once
)

// Initialize sets up the process-wide cache instance
func Initialize(log *logger.Logger) Cache {
	initOnce.Do(func() {
		defaultCache = &InMemoryCache{
			store: gocache.New(DefaultExpiration, DefaultCleanup),
			log:   log,
		}
	})
	return defaultCache
}

// GetInMemoryCache returns the process-wide cache instance
func GetInMemoryCache() Cache {
	if defaultCache == nil {
		Initialize(logger.L)
	}
	return defaultCache
}

func (c *InMemoryCache) Get(ctx context.Context, key string) (interface{}, bool) {
	return c.store.Get(key)
}

func (c *InMemoryCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) {
	c.store.Set(key, value, expiration)
}

func (c *InMemoryCache) Delete(ctx context.Context, key string) {
	c.store.Delete(key)
}

func (c *InMemoryCache) Flush(ctx context.Context) {
	c.store.Flush()
}
