// Package stack provides a LIFO stack adapted from the doubly linked
// list: pushes and pops work on the front in O(1).
package stack

import (
	"fmt"

	"github.com/gostructs/ds/collection"
	"github.com/gostructs/ds/list"
)

// Stack is a last-in-first-out collection. Index 0 is the top.
type Stack[T comparable] struct {
	items *list.List[T]
}

var _ collection.Collection[int] = (*Stack[int])(nil)

// New builds a stack, pushing values left to right so the last value
// ends up on top.
func New[T comparable](values ...T) *Stack[T] {
	s := &Stack[T]{items: list.New[T]()}
	for _, v := range values {
		s.Push(v)
	}
	return s
}

// Push places data on top of the stack.
func (s *Stack[T]) Push(data T) {
	s.items.InsertFront(data)
}

// Pop removes and returns the top element.
// Returns collection.ErrEmpty on an empty stack.
func (s *Stack[T]) Pop() (T, error) {
	if s.items.Empty() {
		var zero T
		return zero, fmt.Errorf("pop: %w", collection.ErrEmpty)
	}
	return s.items.RemoveAt(0)
}

// Top returns the top element without removing it.
// Returns collection.ErrEmpty on an empty stack.
func (s *Stack[T]) Top() (T, error) {
	if s.items.Empty() {
		var zero T
		return zero, fmt.Errorf("top: %w", collection.ErrEmpty)
	}
	return s.items.At(0)
}

// Peek is an alias for Top.
func (s *Stack[T]) Peek() (T, error) { return s.Top() }

// Drain removes every element, returning them top to bottom.
func (s *Stack[T]) Drain() []T {
	out := s.items.Slice()
	s.items.Clear()
	return out
}

// Insert pushes data; it is the contract name for Push.
func (s *Stack[T]) Insert(data T) { s.Push(data) }

// At returns the element at index, counting down from the top.
func (s *Stack[T]) At(index int) (T, error) { return s.items.At(index) }

// RemoveAt removes and returns the element at index.
func (s *Stack[T]) RemoveAt(index int) (T, error) { return s.items.RemoveAt(index) }

// RemoveValue removes and returns the first occurrence of data from the
// top down.
func (s *Stack[T]) RemoveValue(data T) (T, error) { return s.items.RemoveValue(data) }

// Contains reports whether data is on the stack.
func (s *Stack[T]) Contains(data T) bool { return s.items.Contains(data) }

// Min returns the top element; the stack's natural order runs top down.
func (s *Stack[T]) Min() (T, error) { return s.items.Min() }

// Max returns the bottom element.
func (s *Stack[T]) Max() (T, error) { return s.items.Max() }

// Len returns the number of stacked elements.
func (s *Stack[T]) Len() int { return s.items.Len() }

// Empty reports whether the stack has no elements.
func (s *Stack[T]) Empty() bool { return s.items.Empty() }

// Clear removes every element.
func (s *Stack[T]) Clear() { s.items.Clear() }

// Each walks the stack from the top down; the visitor stops the walk by
// returning true.
func (s *Stack[T]) Each(visit func(data T) bool) { s.items.Each(visit) }

// Slice copies the elements top to bottom.
func (s *Stack[T]) Slice() []T { return s.items.Slice() }

// Equal reports whether both stacks hold equal elements in order.
func (s *Stack[T]) Equal(other *Stack[T]) bool { return s.items.Equal(other.items) }

// String renders the stack top to bottom in the debug node format.
func (s *Stack[T]) String() string { return s.items.String() }

// JSON is an alias for String.
func (s *Stack[T]) JSON() string { return s.items.JSON() }
