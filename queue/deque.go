package queue

import (
	"fmt"
	"math"

	"github.com/gostructs/ds/collection"
)

// Deque is a double-ended queue with an optional size cap. When a push
// would exceed the cap, the front element is dropped first to make room,
// regardless of which end is being pushed.
type Deque[T comparable] struct {
	Queue[T]
	maxSize int
}

// NewDeque builds a deque capped at maxSize elements, seeded with
// values. A maxSize <= 0 leaves the deque unbounded.
func NewDeque[T comparable](maxSize int, values ...T) *Deque[T] {
	if maxSize <= 0 {
		maxSize = math.MaxInt
	}
	d := &Deque[T]{Queue: *New[T](), maxSize: maxSize}
	for _, v := range values {
		d.PushBack(v)
	}
	return d
}

// MaxSize returns the configured size cap.
func (d *Deque[T]) MaxSize() int { return d.maxSize }

// PushBack appends data, dropping the front element first when the
// deque is full.
func (d *Deque[T]) PushBack(data T) {
	d.evictOnOverflow()
	d.items.Insert(data)
}

// PushFront prepends data, dropping the current front element first
// when the deque is full.
func (d *Deque[T]) PushFront(data T) {
	d.evictOnOverflow()
	d.items.InsertFront(data)
}

// Enqueue is an alias for PushBack, keeping the queue vocabulary.
func (d *Deque[T]) Enqueue(data T) { d.PushBack(data) }

// Insert is the contract name for PushBack.
func (d *Deque[T]) Insert(data T) { d.PushBack(data) }

// PopFront removes and returns the front element.
// Returns collection.ErrEmpty on an empty deque.
func (d *Deque[T]) PopFront() (T, error) {
	return d.Dequeue()
}

// PopBack removes and returns the back element.
// Returns collection.ErrEmpty on an empty deque.
func (d *Deque[T]) PopBack() (T, error) {
	if d.items.Empty() {
		var zero T
		return zero, fmt.Errorf("pop back: %w", collection.ErrEmpty)
	}
	return d.items.RemoveAt(d.items.Len() - 1)
}

// evictOnOverflow drops the front element when the next push would
// exceed maxSize.
func (d *Deque[T]) evictOnOverflow() {
	if d.items.Len() >= d.maxSize {
		d.items.RemoveAt(0)
	}
}
