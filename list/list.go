package list

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/gostructs/ds/collection"
	"github.com/gostructs/ds/lru"
)

// node is a list cell. prev and next link the neighbors in both
// directions; the ends carry nil.
type node[T comparable] struct {
	data T
	prev *node[T]
	next *node[T]
}

// List is a doubly linked list holding elements in insertion order.
// The zero value is not usable; construct with New.
type List[T comparable] struct {
	front *node[T]
	back  *node[T]
	size  int

	// cache remembers value->node mappings for hot lookups. It is kept
	// coherent by ejecting a value whenever its node leaves the list.
	cache *lru.Cache[T, *node[T]]
}

var _ collection.Collection[int] = (*List[int])(nil)

// New builds a list seeded with values in order.
func New[T comparable](values ...T) *List[T] {
	l := &List[T]{
		cache: lru.New[T, *node[T]](lru.Options[T, *node[T]]{}),
	}
	for _, v := range values {
		l.Insert(v)
	}
	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.size }

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool { return l.size == 0 }

// Clear removes every element and resets the lookup cache.
func (l *List[T]) Clear() {
	l.front, l.back = nil, nil
	l.size = 0
	l.cache.Clear()
}

// Insert appends data at the back of the list.
func (l *List[T]) Insert(data T) {
	n := &node[T]{data: data}
	l.linkBack(n)
	l.finishInsert(n, !l.cache.Contains(data))
}

// InsertFront prepends data at the front of the list.
func (l *List[T]) InsertFront(data T) {
	n := &node[T]{data: data}
	l.linkFront(n)
	// The new node is now the first occurrence of data; drop any stale
	// mapping before reseeding.
	l.cache.Eject(data)
	l.finishInsert(n, true)
}

// InsertAt places data before the element currently at index. An index at
// or past the end appends; index 0 prepends.
func (l *List[T]) InsertAt(data T, index int) {
	switch {
	case l.front == nil || index >= l.size:
		l.Insert(data)
		return
	case index <= 0:
		l.InsertFront(data)
		return
	}

	at := l.nodeAt(index)
	n := &node[T]{data: data, prev: at.prev, next: at}
	at.prev.next = n
	at.prev = n
	// A mid-list duplicate may now precede the cached node.
	l.cache.Eject(data)
	l.finishInsert(n, false)
}

// At returns the element at the zero-based index.
// Returns collection.ErrOutOfRange for an invalid index.
func (l *List[T]) At(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, fmt.Errorf("at %d of %d: %w", index, l.size, collection.ErrOutOfRange)
	}
	if index == 0 {
		return l.front.data, nil
	}
	if index == l.size-1 {
		return l.back.data, nil
	}
	return l.nodeAt(index).data, nil
}

// Contains reports whether data is present.
func (l *List[T]) Contains(data T) bool {
	return l.findNode(data) != nil
}

// Find scans for the first occurrence of data and returns its position.
func (l *List[T]) Find(data T) collection.Match[T] {
	index := 0
	for n := l.front; n != nil; n = n.next {
		if n.data == data {
			if !l.cache.Contains(data) && l.size < l.cache.Capacity() {
				l.cache.Set(data, n)
			}
			return collection.FoundMatch(n.data, index)
		}
		index++
	}
	return collection.NoMatch[T]()
}

// Min returns the front element. Returns collection.ErrEmpty on an empty
// list; the natural order of a list is insertion order.
func (l *List[T]) Min() (T, error) {
	if l.front == nil {
		var zero T
		return zero, fmt.Errorf("min: %w", collection.ErrEmpty)
	}
	return l.front.data, nil
}

// Max returns the back element. Returns collection.ErrEmpty on an empty
// list.
func (l *List[T]) Max() (T, error) {
	if l.back == nil {
		var zero T
		return zero, fmt.Errorf("max: %w", collection.ErrEmpty)
	}
	return l.back.data, nil
}

// RemoveAt removes and returns the element at index.
// Returns collection.ErrOutOfRange for an invalid index.
func (l *List[T]) RemoveAt(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, fmt.Errorf("remove at %d of %d: %w", index, l.size, collection.ErrOutOfRange)
	}
	return l.removeNode(l.nodeAt(index)), nil
}

// RemoveValue removes and returns the first occurrence of data.
// Returns collection.ErrNotFound when data is absent.
func (l *List[T]) RemoveValue(data T) (T, error) {
	n := l.findNode(data)
	if n == nil {
		var zero T
		return zero, fmt.Errorf("remove %v: %w", data, collection.ErrNotFound)
	}
	return l.removeNode(n), nil
}

// Each walks the list front to back. The visitor stops the walk by
// returning true.
func (l *List[T]) Each(visit func(data T) bool) {
	for n := l.front; n != nil; n = n.next {
		if visit(n.data) {
			return
		}
	}
}

// Slice copies the elements to a new slice in forward order.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.size)
	for n := l.front; n != nil; n = n.next {
		out = append(out, n.data)
	}
	return out
}

// Reverse copies the elements to a new slice in back-to-front order.
// The list itself is left untouched.
func (l *List[T]) Reverse() []T {
	out := make([]T, 0, l.size)
	for n := l.back; n != nil; n = n.prev {
		out = append(out, n.data)
	}
	return out
}

// Swap exchanges the elements at pos1 and pos2, relinking the nodes.
// Returns collection.ErrOutOfRange when either position is invalid.
func (l *List[T]) Swap(pos1, pos2 int) error {
	if l.size == 0 {
		return fmt.Errorf("swap on empty list: %w", collection.ErrOutOfRange)
	}
	if pos1 < 0 || pos1 >= l.size || pos2 < 0 || pos2 >= l.size {
		return fmt.Errorf("swap %d, %d of %d: %w", pos1, pos2, l.size, collection.ErrOutOfRange)
	}
	if pos1 == pos2 {
		return nil
	}
	if pos1 > pos2 {
		pos1, pos2 = pos2, pos1
	}

	n1 := l.nodeAt(pos1)
	n2 := l.nodeAt(pos2)
	l.swapNodes(n1, n2)
	return nil
}

// Shuffle permutes the list in place with the Fisher-Yates algorithm.
// Returns collection.ErrEmpty on an empty list.
func (l *List[T]) Shuffle() error {
	if l.size == 0 {
		return fmt.Errorf("shuffle: %w", collection.ErrEmpty)
	}
	for i := l.size - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		if err := l.Swap(i, j); err != nil {
			return err
		}
	}
	return nil
}

// Equal reports whether both lists hold equal elements in the same order.
func (l *List[T]) Equal(other *List[T]) bool {
	eq := func(a, b T) int {
		if a == b {
			return 0
		}
		return 1
	}
	return collection.Equal[T](l, other, eq)
}

// String renders the list front to back in the debug node format.
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.front; n != nil; n = n.next {
		if n != l.front {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, `{"data":%v,"color":"red"}`, n.data)
	}
	sb.WriteByte(']')
	return sb.String()
}

// JSON is an alias for String.
func (l *List[T]) JSON() string { return l.String() }

// -------------------- internals --------------------

// linkBack appends n in O(1).
func (l *List[T]) linkBack(n *node[T]) {
	if l.back == nil {
		l.front, l.back = n, n
		return
	}
	n.prev = l.back
	l.back.next = n
	l.back = n
}

// linkFront prepends n in O(1).
func (l *List[T]) linkFront(n *node[T]) {
	if l.front == nil {
		l.front, l.back = n, n
		return
	}
	n.next = l.front
	l.front.prev = n
	l.front = n
}

// finishInsert updates the size and cache bookkeeping shared by every
// insert path. The cache is seeded only while it still has headroom
// relative to the list size.
func (l *List[T]) finishInsert(n *node[T], seed bool) {
	l.size++
	l.cache.SetCollectionSize(l.size)
	if seed && l.size < l.cache.Capacity() {
		l.cache.Set(n.data, n)
	}
}

// nodeAt walks to index from whichever end is closer.
func (l *List[T]) nodeAt(index int) *node[T] {
	if index < l.size/2 {
		n := l.front
		for i := 0; i < index; i++ {
			n = n.next
		}
		return n
	}
	n := l.back
	for i := l.size - 1; i > index; i-- {
		n = n.prev
	}
	return n
}

// findNode returns the node holding the first occurrence of data, nil
// when absent. Hot values are answered from the cache.
func (l *List[T]) findNode(data T) *node[T] {
	if n, ok := l.cache.Get(data); ok {
		return n
	}
	for n := l.front; n != nil; n = n.next {
		if n.data == data {
			if l.size < l.cache.Capacity() {
				l.cache.Set(data, n)
			}
			return n
		}
	}
	return nil
}

// removeNode unlinks n, keeps the cache coherent, and returns its data.
func (l *List[T]) removeNode(n *node[T]) T {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.front = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.back = n.prev
	}
	n.prev, n.next = nil, nil

	l.size--
	l.cache.Eject(n.data)
	l.cache.SetCollectionSize(l.size)
	return n.data
}

// swapNodes relinks n1 and n2 in place, handling the adjacent case
// separately. n1 precedes n2.
func (l *List[T]) swapNodes(n1, n2 *node[T]) {
	n1Prev, n1Next := n1.prev, n1.next
	n2Prev, n2Next := n2.prev, n2.next

	if n1Next == n2 {
		// adjacent
		n1.next = n2Next
		if n2Next != nil {
			n2Next.prev = n1
		}
		n2.prev = n1Prev
		if n1Prev != nil {
			n1Prev.next = n2
		}
		n1.prev = n2
		n2.next = n1
	} else {
		n1.prev, n1.next = n2Prev, n2Next
		if n2Prev != nil {
			n2Prev.next = n1
		}
		if n2Next != nil {
			n2Next.prev = n1
		}
		n2.prev, n2.next = n1Prev, n1Next
		if n1Prev != nil {
			n1Prev.next = n2
		}
		if n1Next != nil {
			n1Next.prev = n2
		}
	}

	if l.front == n1 {
		l.front = n2
	} else if l.front == n2 {
		l.front = n1
	}
	if l.back == n2 {
		l.back = n1
	} else if l.back == n1 {
		l.back = n2
	}
}
