package backend

import "github.com/emmaagwu/boundcache/list"

// orderWitness keeps keys in a single sequence, oldest at the front.
//
// It covers four policies:
//
//	FIFO: insertion order, evict front
//	LIFO: insertion order, evict back
//	LRU:  recency order,   evict front
//	MRU:  recency order,   evict back
type orderWitness[K comparable] struct {
	keys        list.List[K]
	index       map[K]*list.Element[K]
	promote     bool
	evictNewest bool
}

func newOrderWitness[K comparable](promote, evictNewest bool) *orderWitness[K] {
	return &orderWitness[K]{
		index:       make(map[K]*list.Element[K]),
		promote:     promote,
		evictNewest: evictNewest,
	}
}

func (w *orderWitness[K]) Insert(key K) {
	w.index[key] = w.keys.PushBack(key)
}

func (w *orderWitness[K]) Touch(key K) {
	if !w.promote {
		return
	}
	if e, ok := w.index[key]; ok {
		w.keys.MoveToBack(e)
	}
}

func (w *orderWitness[K]) Remove(key K) {
	if e, ok := w.index[key]; ok {
		w.keys.Remove(e)
		delete(w.index, key)
	}
}

func (w *orderWitness[K]) Victim() (key K, ok bool) {
	e := w.keys.Front()
	if w.evictNewest {
		e = w.keys.Back()
	}

	if e == nil {
		return key, false
	}

	return e.Value, true
}

func (w *orderWitness[K]) Len() int {
	return w.keys.Len()
}

func (w *orderWitness[K]) Do(f func(key K) bool) {
	visit := func(e *list.Element[K]) bool {
		return f(e.Value)
	}

	if w.evictNewest {
		w.keys.DoReverse(visit)
	} else {
		w.keys.Do(visit)
	}
}
