package backend

// Witness records the history a policy needs to choose the next victim.
//
// A key enters the witness with Insert when it first enters the cache and
// leaves it with Remove when it is evicted. Methods are called under the
// backend lock.
type Witness[K comparable] interface {
	// Insert records a key that was not present before.
	Insert(key K)
	// Touch records a use of a present key by Put or Get.
	Touch(key K)
	// Remove forgets a present key.
	Remove(key K)
	// Victim returns the key to evict next.
	Victim() (key K, ok bool)
	// Len returns the number of tracked keys.
	Len() int
	// Do calls f for each key in eviction order, next victim first.
	Do(f func(key K) bool)
}
