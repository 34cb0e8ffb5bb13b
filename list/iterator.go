package list

// Iterator walks a list one node at a time. It holds a non-owning
// reference: when the node it points at is removed from the list the
// iterator degrades to the end position instead of misbehaving.
type Iterator[T comparable] struct {
	list *List[T]
	cur  *node[T]
}

// Begin returns an iterator positioned at the front of the list.
func (l *List[T]) Begin() *Iterator[T] {
	return &Iterator[T]{list: l, cur: l.front}
}

// RBegin returns an iterator positioned at the back of the list.
func (l *List[T]) RBegin() *Iterator[T] {
	return &Iterator[T]{list: l, cur: l.back}
}

// Valid reports whether the iterator points at a live node. A node that
// was unlinked from the list no longer counts.
func (it *Iterator[T]) Valid() bool {
	n := it.cur
	if n == nil {
		return false
	}
	// Unlinked nodes have both links cleared; the only resident node in
	// that state is a single-element list's front.
	if n.prev == nil && n.next == nil && it.list.front != n {
		return false
	}
	return true
}

// Value returns the element under the iterator, or the zero value when
// the iterator is at the end or detached.
func (it *Iterator[T]) Value() T {
	if !it.Valid() {
		var zero T
		return zero
	}
	return it.cur.data
}

// Next advances toward the back. Returns false once the end is reached
// or the current node has been removed.
func (it *Iterator[T]) Next() bool {
	if !it.Valid() {
		it.cur = nil
		return false
	}
	it.cur = it.cur.next
	return it.cur != nil
}

// Prev steps toward the front. Returns false once the front is passed or
// the current node has been removed.
func (it *Iterator[T]) Prev() bool {
	if !it.Valid() {
		it.cur = nil
		return false
	}
	it.cur = it.cur.prev
	return it.cur != nil
}
