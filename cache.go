/*
Package boundcache implements a bounded in-memory key-value cache with
pluggable eviction policies: FIFO, LIFO, LRU, MRU and LFU.

The cache holds at most a fixed number of items. Inserting a new key into
a full cache evicts exactly one existing key chosen by the policy, and
every eviction is reported to the configured handler and logger.
*/
package boundcache

import (
	"reflect"

	"github.com/rs/zerolog"

	"github.com/emmaagwu/boundcache/internal/backend"
)

// Cache is a bounded in-memory cache.
type Cache[K comparable, V any] struct {
	backend *backend.Backend[K, V]
	onEvict func(key K, value V)
	log     zerolog.Logger
}

// New creates an empty cache.
func New[K comparable, V any](opts ...Option) *Cache[K, V] {
	o := newDefaultCacheOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	c := &Cache[K, V]{
		backend: backend.NewBackend[K, V](o.policy, o.capacity),
		log:     o.logger.With().Str("policy", o.policy.String()).Logger(),
	}

	if o.onEvict != nil {
		f, ok := o.onEvict.(func(K, V))
		if !ok {
			panic("boundcache: eviction handler does not match the cache key and value types")
		}
		c.onEvict = f
	}

	return c
}

// Put stores value for key. A nil key or value is ignored.
//
// If key is new and the cache is full, the policy's victim is evicted first.
// Replacing the value of a present key never evicts.
func (c *Cache[K, V]) Put(key K, value V) {
	if isNil(key) || isNil(value) {
		return
	}

	evicted, replaced := c.backend.Store(key, value)
	if replaced {
		c.log.Debug().Interface("key", key).Msg("update")
		return
	}

	c.log.Debug().Interface("key", key).Msg("insert")

	if evicted == nil {
		return
	}

	c.log.Info().Interface("key", evicted.Key).Msg("DISCARD")

	if c.onEvict != nil {
		c.onEvict(evicted.Key, evicted.Value)
	}
}

// Get returns the value stored in the cache for key and records the use.
func (c *Cache[K, V]) Get(key K) (value V, exists bool) {
	if isNil(key) {
		return value, false
	}

	return c.backend.Load(key)
}

// Peek returns the value stored in the cache for key without recording a use.
func (c *Cache[K, V]) Peek(key K) (value V, exists bool) {
	if isNil(key) {
		return value, false
	}

	return c.backend.Peek(key)
}

// Exists returns whether a value in the cache exists for key.
// It does not record a use.
func (c *Cache[K, V]) Exists(key K) bool {
	_, ok := c.Peek(key)
	return ok
}

// Range calls f for each key and value present in the cache in eviction
// order, next victim first. If f returns false, Range stops the iteration.
// Range does not record uses and is allowed to modify the cache.
func (c *Cache[K, V]) Range(f func(key K, value V) bool) {
	for _, e := range c.backend.Entries() {
		if !f(e.Key, e.Value) {
			return
		}
	}
}

// Keys returns the present keys in eviction order.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, c.Len())
	c.Range(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Len returns the number of keys in the cache.
func (c *Cache[K, V]) Len() int {
	return c.backend.Len()
}

// Cap returns the maximum number of keys in the cache.
func (c *Cache[K, V]) Cap() int {
	return c.backend.Cap()
}

// Policy returns the eviction policy of the cache.
func (c *Cache[K, V]) Policy() Policy {
	return c.backend.Policy()
}

func isNil(a any) bool {
	if a == nil {
		return true
	}

	switch reflect.TypeOf(a).Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Ptr, reflect.Slice, reflect.UnsafePointer:
		return reflect.ValueOf(a).IsNil()
	}

	return false
}
