package mocks

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"cruisevoyager/shared/cache"
)

// cacheImpl is an in-memory stand-in for the Redis cache, used by tests.
type cacheImpl struct {
	mu    sync.Mutex
	items map[string][]byte
}

func NewRedisCache() cache.RedisCache {
	return &cacheImpl{
		items: map[string][]byte{},
	}
}

func (c *cacheImpl) Save(_ context.Context, key string, value any, _ int) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err //nolint:wrapcheck
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = data

	return nil
}

func (c *cacheImpl) Get(_ context.Context, key string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.items[key]
	if !ok {
		return cache.Nil
	}

	return json.Unmarshal(data, value) //nolint:wrapcheck
}

func (c *cacheImpl) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)

	return nil
}

func (c *cacheImpl) Clear(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	trimmed := strings.TrimSuffix(prefix, "*")

	for key := range c.items {
		if strings.HasPrefix(key, trimmed) {
			delete(c.items, key)
		}
	}

	return nil
}
