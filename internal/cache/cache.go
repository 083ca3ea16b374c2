// Package cache stores serialized calculation results keyed by their
// canonical inputs.
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Backend names accepted by New.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// Cache is a byte-oriented key/value store with a per-store TTL.
type Cache interface {
	// Get returns the stored value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key, replacing any existing value.
	Set(ctx context.Context, key string, value []byte) error
}

// Options configures New.
type Options struct {
	Backend      string
	RedisAddress string
	TTL          time.Duration
	MaxEntries   int
}

// New builds the cache selected by opts.Backend. An empty backend selects
// the in-memory cache.
func New(opts Options) (Cache, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case "", BackendMemory:
		return NewMemoryCache(opts.MaxEntries, opts.TTL), nil
	case BackendRedis:
		if strings.TrimSpace(opts.RedisAddress) == "" {
			return nil, fmt.Errorf("redis cache requires an address")
		}
		return NewRedisCache(opts.RedisAddress, opts.TTL), nil
	case BackendNone:
		return NopCache{}, nil
	default:
		return nil, fmt.Errorf("unsupported cache backend %q (must be %s, %s, or %s)",
			opts.Backend, BackendMemory, BackendRedis, BackendNone)
	}
}

// NopCache never stores anything.
type NopCache struct{}

// Get always misses.
func (NopCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the value.
func (NopCache) Set(context.Context, string, []byte) error {
	return nil
}
