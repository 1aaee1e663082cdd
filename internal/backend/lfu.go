package backend

import "github.com/emmaagwu/boundcache/list"

// lfuWitness tracks access counts in O(1) per operation.
//
// buckets is ordered by ascending count and never holds an empty bucket.
// Within a bucket keys are ordered by the time they reached that count,
// so the front key of the front bucket is the least frequently used and,
// among equal counts, the least recently inserted or updated.
type lfuWitness[K comparable] struct {
	buckets list.List[*freqBucket[K]]
	items   map[K]*lfuItem[K]
}

type freqBucket[K comparable] struct {
	count uint64
	keys  list.List[K]
}

type lfuItem[K comparable] struct {
	elem   *list.Element[K]
	bucket *list.Element[*freqBucket[K]]
}

func newLFUWitness[K comparable]() *lfuWitness[K] {
	return &lfuWitness[K]{
		items: make(map[K]*lfuItem[K]),
	}
}

func (w *lfuWitness[K]) Insert(key K) {
	front := w.buckets.Front()
	if front == nil || front.Value.count != 1 {
		front = w.buckets.PushFront(&freqBucket[K]{count: 1})
	}

	w.items[key] = &lfuItem[K]{
		elem:   front.Value.keys.PushBack(key),
		bucket: front,
	}
}

func (w *lfuWitness[K]) Touch(key K) {
	item, ok := w.items[key]
	if !ok {
		return
	}

	cur := item.bucket
	count := cur.Value.count + 1

	next := cur.Next()
	if next == nil || next.Value.count != count {
		next = w.buckets.InsertAfter(&freqBucket[K]{count: count}, cur)
	}

	cur.Value.keys.Remove(item.elem)
	next.Value.keys.PushBackElem(item.elem)
	item.bucket = next

	if cur.Value.keys.Len() == 0 {
		w.buckets.Remove(cur)
	}
}

func (w *lfuWitness[K]) Remove(key K) {
	item, ok := w.items[key]
	if !ok {
		return
	}

	item.bucket.Value.keys.Remove(item.elem)
	if item.bucket.Value.keys.Len() == 0 {
		w.buckets.Remove(item.bucket)
	}

	delete(w.items, key)
}

func (w *lfuWitness[K]) Victim() (key K, ok bool) {
	front := w.buckets.Front()
	if front == nil {
		return key, false
	}

	return front.Value.keys.Front().Value, true
}

func (w *lfuWitness[K]) Len() int {
	return len(w.items)
}

func (w *lfuWitness[K]) Do(f func(key K) bool) {
	w.buckets.Do(func(b *list.Element[*freqBucket[K]]) bool {
		cont := true
		b.Value.keys.Do(func(e *list.Element[K]) bool {
			cont = f(e.Value)
			return cont
		})
		return cont
	})
}

// Count returns the access count of key, or zero if it is not tracked.
func (w *lfuWitness[K]) Count(key K) uint64 {
	if item, ok := w.items[key]; ok {
		return item.bucket.Value.count
	}
	return 0
}
