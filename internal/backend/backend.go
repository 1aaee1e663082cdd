/*
Package backend implements the cache backend: the key map, the eviction
witness and the lock that keeps them consistent.
*/
package backend

import (
	"fmt"
	"sync"

	"github.com/puzpuzpuz/xsync/v2"
)

// Backend implements cache backend.
// Every present key is stored in both the map and the witness.
type Backend[K comparable, V any] struct {
	xmap    *xsync.MapOf[K, V]
	witness Witness[K]
	policy  Policy
	cap     int
	mu      sync.Mutex
}

// NewBackend creates an empty backend holding at most capacity keys.
func NewBackend[K comparable, V any](policy Policy, capacity int) *Backend[K, V] {
	if capacity < 1 {
		panic(fmt.Sprintf("backend: invalid capacity %d", capacity))
	}

	return &Backend[K, V]{
		xmap:    newMap[K, V](),
		witness: NewWitness[K](policy),
		policy:  policy,
		cap:     capacity,
	}
}

// Policy returns the eviction policy.
func (b *Backend[K, V]) Policy() Policy {
	return b.policy
}

// Cap returns the capacity.
func (b *Backend[K, V]) Cap() int {
	return b.cap
}

// Len returns the number of stored keys.
func (b *Backend[K, V]) Len() int {
	return b.xmap.Size()
}

// Store sets the value for key and reports whether key was already present.
// Storing a new key into a full backend first evicts the policy's victim,
// which is returned.
func (b *Backend[K, V]) Store(key K, value V) (evicted *Entry[K, V], replaced bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.xmap.Load(key); exists {
		b.xmap.Store(key, value)
		b.witness.Touch(key)
		return nil, true
	}

	if b.witness.Len() >= b.cap {
		evicted = b.evictLocked()
	}

	b.xmap.Store(key, value)
	b.witness.Insert(key)

	return evicted, false
}

// Load returns the value for key and records the use.
func (b *Backend[K, V]) Load(key K) (value V, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if value, ok = b.xmap.Load(key); ok {
		b.witness.Touch(key)
	}

	return value, ok
}

// Peek returns the value for key without recording a use.
func (b *Backend[K, V]) Peek(key K) (value V, ok bool) {
	return b.xmap.Load(key)
}

// Entries returns a snapshot of all entries in eviction order.
func (b *Backend[K, V]) Entries() []Entry[K, V] {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := make([]Entry[K, V], 0, b.witness.Len())
	b.witness.Do(func(key K) bool {
		value, _ := b.xmap.Load(key)
		entries = append(entries, Entry[K, V]{Key: key, Value: value})
		return true
	})

	return entries
}

func (b *Backend[K, V]) evictLocked() *Entry[K, V] {
	key, ok := b.witness.Victim()
	if !ok {
		return nil
	}

	value, _ := b.xmap.LoadAndDelete(key)
	b.witness.Remove(key)

	return &Entry[K, V]{Key: key, Value: value}
}
