package mocks

import (
	"context"

	"backoffice/shared/cache"
)

type missCache struct {
}

// Get implements cache.RedisCache and always misses.
func (c *missCache) Get(_ context.Context, _ string, _ any) error {
	return cache.Nil
}

// Save implements cache.RedisCache.
func (c *missCache) Save(_ context.Context, _ string, _ any, _ int) error {
	return nil
}

// Delete implements cache.RedisCache.
func (c *missCache) Delete(_ context.Context, _ string) error {
	return nil
}

// Clear implements cache.RedisCache.
func (c *missCache) Clear(_ context.Context, _ string) error {
	return nil
}

// NewMissCache returns a cache that never hits and accepts every write.
// Service tests use it so caching stays out of the way of repository
// expectations.
func NewMissCache() cache.RedisCache {
	return &missCache{}
}
