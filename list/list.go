/*
Package list implements a generic circular doubly linked list.

Elements carry a back-pointer to their list so that Next and Prev stop at
the list boundaries. The list does not allocate for moves, which makes it
suitable as the ordering structure behind cache eviction policies.
*/
package list

// List is a doubly linked list.
//
// The zero value is a ready to use empty list.
type List[V any] struct {
	tail *Element[V]
	len  int
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.len
}

// Front returns the first element of the list or nil.
func (l *List[V]) Front() *Element[V] {
	if l.len == 0 {
		return nil
	}
	return l.tail.next
}

// Back returns the last element of the list or nil.
func (l *List[V]) Back() *Element[V] {
	return l.tail
}

// PushBack inserts a value at the back of list l and returns the new element.
func (l *List[V]) PushBack(value V) *Element[V] {
	e := NewElement(value)
	l.PushBackElem(e)
	return e
}

// PushBackElem inserts a detached element at the back of list l.
func (l *List[V]) PushBackElem(e *Element[V]) {
	l.checkDetached(e)
	e.list = l
	if l.tail != nil {
		l.tail.link(e)
	}
	l.tail = e
	l.len++
}

// PushFront inserts a value at the front of list l and returns the new element.
func (l *List[V]) PushFront(value V) *Element[V] {
	e := NewElement(value)
	l.PushFrontElem(e)
	return e
}

// PushFrontElem inserts a detached element at the front of list l.
func (l *List[V]) PushFrontElem(e *Element[V]) {
	l.checkDetached(e)
	e.list = l
	if l.tail != nil {
		l.tail.link(e)
	} else {
		l.tail = e
	}
	l.len++
}

// InsertAfter inserts a value immediately after mark and returns the new element.
func (l *List[V]) InsertAfter(value V, mark *Element[V]) *Element[V] {
	l.checkOwned(mark)

	e := NewElement(value)
	e.list = l
	mark.link(e)
	if mark == l.tail {
		l.tail = e
	}
	l.len++

	return e
}

// InsertBefore inserts a value immediately before mark and returns the new element.
func (l *List[V]) InsertBefore(value V, mark *Element[V]) *Element[V] {
	l.checkOwned(mark)

	e := NewElement(value)
	e.list = l
	mark.prev.link(e)
	l.len++

	return e
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(e *Element[V]) bool) {
	for e := l.Front(); e != nil; e = e.Next() {
		if !f(e) {
			return
		}
	}
}

// DoReverse is like Do but iterates in backward order.
func (l *List[V]) DoReverse(f func(e *Element[V]) bool) {
	for e := l.Back(); e != nil; e = e.Prev() {
		if !f(e) {
			return
		}
	}
}

// MoveAfter moves an element to its new position after mark.
// If mark == l.Back(), e becomes the new back element.
func (l *List[V]) MoveAfter(e, mark *Element[V]) {
	if e == mark {
		return
	}

	l.Remove(e)

	e.list = l
	mark.link(e)
	l.len++

	if mark == l.tail {
		l.tail = e
	}
}

// MoveBefore moves an element to its new position before mark.
// If mark == l.Front(), e becomes the new front element.
func (l *List[V]) MoveBefore(e, mark *Element[V]) {
	if e == mark {
		return
	}

	l.Remove(e)

	e.list = l
	mark.prev.link(e)
	l.len++
}

// MoveToFront moves the element to the front of list l.
func (l *List[V]) MoveToFront(e *Element[V]) {
	l.MoveBefore(e, l.Front())
}

// MoveToBack moves the element to the back of list l.
func (l *List[V]) MoveToBack(e *Element[V]) {
	l.MoveAfter(e, l.Back())
}

// Remove an element from the list.
func (l *List[V]) Remove(e *Element[V]) {
	l.checkOwned(e)

	if e == l.tail {
		if l.len == 1 {
			l.tail = nil
		} else {
			l.tail = e.prev
		}
	}
	e.unlink()
	l.len--
}

func (l *List[V]) checkOwned(e *Element[V]) {
	if e == nil || e.list != l {
		panic("list: element not in list")
	}
}

func (l *List[V]) checkDetached(e *Element[V]) {
	if e.list != nil {
		panic("list: element already in a list")
	}
}
