// Package pqueue provides a priority queue built on the red-black tree.
//
// Elements are keyed by a Priority pair (value, offset): the user-chosen
// priority value plus a per-value insertion offset that keeps equal
// priorities in FIFO order. Dequeue removes the smallest key, so lower
// values drain first and ties drain in arrival order.
package pqueue

import (
	"fmt"

	"github.com/gostructs/ds/collection"
	"github.com/gostructs/ds/rbtree"
)

// Priority is a queue element: the payload plus the ordering key.
type Priority[T any] struct {
	// Data is the caller's payload.
	Data T

	// Value is the priority; lower values dequeue first.
	Value int

	// Offset disambiguates entries sharing a Value, in insertion order.
	Offset uint64
}

// Key renders the ordering key as "value:offset", zero padded so the
// lexicographic and numeric orders agree.
func (p Priority[T]) Key() string {
	return fmt.Sprintf("%09d:%09d", p.Value, p.Offset)
}

// String renders the element for debug output.
func (p Priority[T]) String() string {
	return fmt.Sprintf(`"data":%v, "key":%q`, p.Data, p.Key())
}

// Compare orders priorities by value, then by insertion offset.
func Compare[T any](a, b Priority[T]) int {
	switch {
	case a.Value < b.Value:
		return -1
	case a.Value > b.Value:
		return 1
	case a.Offset < b.Offset:
		return -1
	case a.Offset > b.Offset:
		return 1
	}
	return 0
}

// PriorityQueue dispenses elements smallest priority first.
type PriorityQueue[T any] struct {
	tree *rbtree.Tree[Priority[T]]

	// offsets tracks the last offset handed out per priority value.
	offsets map[int]uint64
}

// New constructs an empty priority queue.
func New[T any]() *PriorityQueue[T] {
	return &PriorityQueue[T]{
		tree:    rbtree.New(Compare[T]),
		offsets: make(map[int]uint64),
	}
}

// Len returns the number of queued elements.
func (q *PriorityQueue[T]) Len() int { return q.tree.Len() }

// Empty reports whether the queue holds no elements.
func (q *PriorityQueue[T]) Empty() bool { return q.tree.Empty() }

// Clear removes every element and resets the offset counters.
func (q *PriorityQueue[T]) Clear() {
	q.tree.Clear()
	q.offsets = make(map[int]uint64)
}

// Enqueue adds data under the given priority value and returns the
// Priority element created for it. Elements with equal values keep
// their arrival order.
func (q *PriorityQueue[T]) Enqueue(data T, value int) Priority[T] {
	q.offsets[value]++
	p := Priority[T]{Data: data, Value: value, Offset: q.offsets[value]}
	q.tree.Insert(p)
	return p
}

// EnqueuePriority inserts a pre-built element, advancing the offset
// bookkeeping so later Enqueue calls with the same value sort after it.
func (q *PriorityQueue[T]) EnqueuePriority(p Priority[T]) Priority[T] {
	if p.Offset > q.offsets[p.Value] {
		q.offsets[p.Value] = p.Offset
	}
	q.tree.Insert(p)
	return p
}

// Dequeue removes and returns the element with the smallest key.
// Returns collection.ErrEmpty on an empty queue.
func (q *PriorityQueue[T]) Dequeue() (Priority[T], error) {
	if q.tree.Empty() {
		return Priority[T]{}, fmt.Errorf("dequeue: %w", collection.ErrEmpty)
	}
	return q.tree.RemoveMin()
}

// Peek returns the element with the smallest key without removing it.
// Returns collection.ErrEmpty on an empty queue.
func (q *PriorityQueue[T]) Peek() (Priority[T], error) {
	if q.tree.Empty() {
		return Priority[T]{}, fmt.Errorf("peek: %w", collection.ErrEmpty)
	}
	return q.tree.Min()
}

// Drain removes every element, returning them in dequeue order.
func (q *PriorityQueue[T]) Drain() []Priority[T] {
	out := make([]Priority[T], 0, q.tree.Len())
	for !q.tree.Empty() {
		p, err := q.tree.RemoveMin()
		if err != nil {
			break
		}
		out = append(out, p)
	}
	q.offsets = make(map[int]uint64)
	return out
}

// Slice exports the elements in dequeue order without removing them.
func (q *PriorityQueue[T]) Slice() []Priority[T] {
	return q.tree.Slice()
}

// String renders the underlying tree.
func (q *PriorityQueue[T]) String() string { return q.tree.String() }
