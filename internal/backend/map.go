package backend

import (
	"hash/maphash"

	"github.com/puzpuzpuz/xsync/v2"
)

func newMap[K comparable, V any]() *xsync.MapOf[K, V] {
	return xsync.NewTypedMapOf[K, V](func(seed maphash.Seed, key K) uint64 {
		return maphash.Comparable(seed, key)
	})
}
