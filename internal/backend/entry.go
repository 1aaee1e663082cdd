package backend

// Entry is a key and the value it mapped to.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}
