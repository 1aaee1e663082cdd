package boundcache

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/emmaagwu/boundcache/internal/backend"
)

// Policy is a cache eviction policy.
type Policy = backend.Policy

// Available cache eviction policies.
const (
	// FIFO policy evicts the oldest inserted key.
	FIFO = backend.FIFO
	// LIFO policy evicts the most recently inserted key.
	LIFO = backend.LIFO
	// LRU policy evicts the least recently used key.
	LRU = backend.LRU
	// MRU policy evicts the most recently used key.
	MRU = backend.MRU
	// LFU policy evicts the least frequently used key,
	// the least recently used one among equal counts.
	LFU = backend.LFU
)

// DefaultCapacity is the capacity of a cache created without WithCapacity.
const DefaultCapacity = 4

// ParsePolicy returns the policy named by s, case-insensitively.
// The empty string names FIFO.
func ParsePolicy(s string) (Policy, error) {
	p := Policy(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return FIFO, nil
	}
	if !p.Valid() {
		return "", &PolicyError{Name: s}
	}
	return p, nil
}

// Option is a cache configuration option.
type Option interface {
	apply(*cacheOptions)
}

type cacheOptions struct {
	policy   Policy
	capacity int
	logger   zerolog.Logger
	onEvict  any
}

func newDefaultCacheOptions() cacheOptions {
	return cacheOptions{
		policy:   FIFO,
		capacity: DefaultCapacity,
		logger:   zerolog.Nop(),
	}
}

// WithCapacity option configures the maximum number of keys.
//
// It panics if capacity is not positive.
func WithCapacity(capacity int) Option {
	if capacity < 1 {
		panic("boundcache: capacity must be positive")
	}

	return funcOption(func(opts *cacheOptions) {
		opts.capacity = capacity
	})
}

// WithPolicy option configures the cache with specified eviction policy.
//
// The zero value configures the FIFO policy.
func WithPolicy(policy Policy) Option {
	return funcOption(func(opts *cacheOptions) {
		switch {
		case policy == "":
			opts.policy = FIFO

		case policy.Valid():
			opts.policy = policy

		default:
			panic("boundcache: invalid eviction policy '" + string(policy) + "'")
		}
	})
}

// WithLogger option configures the logger that receives a DISCARD event
// for every eviction.
func WithLogger(logger zerolog.Logger) Option {
	return funcOption(func(opts *cacheOptions) {
		opts.logger = logger
	})
}

// WithEvictionHandler option configures a function called after every
// eviction with the evicted key and value. The handler runs after the
// cache lock is released and may use the cache.
//
// K and V must match the types of the cache it configures.
func WithEvictionHandler[K comparable, V any](f func(key K, value V)) Option {
	return funcOption(func(opts *cacheOptions) {
		if f == nil {
			opts.onEvict = nil
			return
		}
		opts.onEvict = f
	})
}

type funcOption func(*cacheOptions)

func (o funcOption) apply(opts *cacheOptions) {
	o(opts)
}
