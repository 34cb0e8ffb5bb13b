package list

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/gostructs/ds/collection"
)

// SortedList is a list whose elements stay in non-decreasing comparator
// order. Operations that would destroy the order are disabled.
type SortedList[T comparable] struct {
	List[T]
	cmp collection.Compare[T]
}

var _ collection.Collection[int] = (*SortedList[int])(nil)

// NewSorted builds a sorted list over the natural order of T, seeded
// with values.
func NewSorted[T constraints.Ordered](values ...T) *SortedList[T] {
	return NewSortedFunc(collection.Ordered[T](), values...)
}

// NewSortedFunc builds a sorted list ordered by cmp, seeded with values.
// Panics when cmp is nil.
func NewSortedFunc[T comparable](cmp collection.Compare[T], values ...T) *SortedList[T] {
	if cmp == nil {
		panic("list: nil comparator")
	}
	s := &SortedList[T]{List: *New[T](), cmp: cmp}
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

// Insert places data at its sorted position, before any equal elements
// already present.
func (s *SortedList[T]) Insert(data T) {
	index := 0
	for n := s.front; n != nil && s.cmp(data, n.data) > 0; n = n.next {
		index++
	}
	s.InsertAt(data, index)
}

// Shuffle is disabled; it would destroy the sorted order.
func (s *SortedList[T]) Shuffle() error {
	return fmt.Errorf("shuffle on a sorted list: %w", collection.ErrInvalidArgument)
}

// Swap is disabled; it would destroy the sorted order.
func (s *SortedList[T]) Swap(pos1, pos2 int) error {
	return fmt.Errorf("swap on a sorted list: %w", collection.ErrInvalidArgument)
}

// Reverse is disabled on a sorted list and returns nil.
func (s *SortedList[T]) Reverse() []T { return nil }
