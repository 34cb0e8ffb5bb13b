// Package queue provides a FIFO queue and a bounded double-ended variant
// adapted from the doubly linked list.
package queue

import (
	"fmt"

	"github.com/gostructs/ds/collection"
	"github.com/gostructs/ds/list"
)

// Queue is a first-in-first-out collection. Index 0 is the front.
type Queue[T comparable] struct {
	items *list.List[T]
}

var _ collection.Collection[int] = (*Queue[int])(nil)

// New builds a queue seeded with values in order.
func New[T comparable](values ...T) *Queue[T] {
	q := &Queue[T]{items: list.New[T]()}
	for _, v := range values {
		q.Enqueue(v)
	}
	return q
}

// Enqueue adds data at the back of the queue.
func (q *Queue[T]) Enqueue(data T) {
	q.items.Insert(data)
}

// Dequeue removes and returns the front element.
// Returns collection.ErrEmpty on an empty queue.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.items.Empty() {
		var zero T
		return zero, fmt.Errorf("dequeue: %w", collection.ErrEmpty)
	}
	return q.items.RemoveAt(0)
}

// Front returns the next element to be dequeued without removing it.
// Returns collection.ErrEmpty on an empty queue.
func (q *Queue[T]) Front() (T, error) {
	if q.items.Empty() {
		var zero T
		return zero, fmt.Errorf("front: %w", collection.ErrEmpty)
	}
	return q.items.At(0)
}

// Back returns the most recently enqueued element without removing it.
// Returns collection.ErrEmpty on an empty queue.
func (q *Queue[T]) Back() (T, error) {
	if q.items.Empty() {
		var zero T
		return zero, fmt.Errorf("back: %w", collection.ErrEmpty)
	}
	return q.items.At(q.items.Len() - 1)
}

// Eject removes and returns the first occurrence of data regardless of
// its position. Returns collection.ErrNotFound when data is absent.
func (q *Queue[T]) Eject(data T) (T, error) {
	return q.items.RemoveValue(data)
}

// Drain removes every element, returning them in dequeue order.
func (q *Queue[T]) Drain() []T {
	out := q.items.Slice()
	q.items.Clear()
	return out
}

// Insert enqueues data; it is the contract name for Enqueue.
func (q *Queue[T]) Insert(data T) { q.Enqueue(data) }

// At returns the element at index, counting from the front.
func (q *Queue[T]) At(index int) (T, error) { return q.items.At(index) }

// RemoveAt removes and returns the element at index.
func (q *Queue[T]) RemoveAt(index int) (T, error) { return q.items.RemoveAt(index) }

// RemoveValue removes and returns the first occurrence of data.
func (q *Queue[T]) RemoveValue(data T) (T, error) { return q.items.RemoveValue(data) }

// Contains reports whether data is queued.
func (q *Queue[T]) Contains(data T) bool { return q.items.Contains(data) }

// Min returns the front element; the queue's natural order is arrival
// order.
func (q *Queue[T]) Min() (T, error) { return q.items.Min() }

// Max returns the back element.
func (q *Queue[T]) Max() (T, error) { return q.items.Max() }

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.items.Len() }

// Empty reports whether the queue has no elements.
func (q *Queue[T]) Empty() bool { return q.items.Empty() }

// Clear removes every element.
func (q *Queue[T]) Clear() { q.items.Clear() }

// Each walks the queue front to back; the visitor stops the walk by
// returning true.
func (q *Queue[T]) Each(visit func(data T) bool) { q.items.Each(visit) }

// Slice copies the elements front to back.
func (q *Queue[T]) Slice() []T { return q.items.Slice() }

// Equal reports whether both queues hold equal elements in order.
func (q *Queue[T]) Equal(other *Queue[T]) bool { return q.items.Equal(other.items) }

// String renders the queue front to back in the debug node format.
func (q *Queue[T]) String() string { return q.items.String() }

// JSON is an alias for String.
func (q *Queue[T]) JSON() string { return q.items.JSON() }
