package backend

import "fmt"

// Policy is a cache eviction policy.
type Policy string

// Available cache eviction policies.
const (
	FIFO Policy = "fifo"
	LIFO Policy = "lifo"
	LRU  Policy = "lru"
	MRU  Policy = "mru"
	LFU  Policy = "lfu"
)

// Policies lists every supported policy.
var Policies = []Policy{FIFO, LIFO, LRU, MRU, LFU}

// Valid reports whether p names a supported policy.
func (p Policy) Valid() bool {
	switch p {
	case FIFO, LIFO, LRU, MRU, LFU:
		return true
	}
	return false
}

func (p Policy) String() string {
	return string(p)
}

// NewWitness creates the empty witness that tracks eviction order for p.
func NewWitness[K comparable](p Policy) Witness[K] {
	switch p {
	case FIFO:
		return newOrderWitness[K](false, false)
	case LIFO:
		return newOrderWitness[K](false, true)
	case LRU:
		return newOrderWitness[K](true, false)
	case MRU:
		return newOrderWitness[K](true, true)
	case LFU:
		return newLFUWitness[K]()
	default:
		panic(fmt.Sprintf("backend: invalid eviction policy '%s'", p))
	}
}
