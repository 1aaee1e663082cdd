package list

// Element is a list element.
type Element[V any] struct {
	next, prev *Element[V]
	list       *List[V]
	Value      V
}

// NewElement creates a detached list element.
func NewElement[V any](v V) *Element[V] {
	e := &Element[V]{
		Value: v,
	}
	e.next = e
	e.prev = e
	return e
}

// Next returns the next element or nil if e is the back element of its list.
func (e *Element[V]) Next() *Element[V] {
	if e.list == nil || e == e.list.tail {
		return nil
	}
	return e.next
}

// Prev returns the previous element or nil if e is the front element of its list.
func (e *Element[V]) Prev() *Element[V] {
	if e.list == nil || e == e.list.tail.next {
		return nil
	}
	return e.prev
}

// link inserts s after e.
func (e *Element[V]) link(s *Element[V]) {
	n := e.next
	e.next = s
	s.prev = e
	n.prev = s
	s.next = n
}

// unlink detaches e from its ring.
func (e *Element[V]) unlink() {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = e
	e.prev = e
	e.list = nil
}
