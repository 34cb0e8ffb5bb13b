package list

import (
	"golang.org/x/exp/constraints"

	"github.com/gostructs/ds/collection"
)

// OrderedSet is a sorted list of unique values; inserting a value that is
// already present is a no-op.
type OrderedSet[T comparable] struct {
	SortedList[T]
}

var _ collection.Collection[int] = (*OrderedSet[int])(nil)

// NewSet builds an ordered set over the natural order of T, seeded with
// values. Duplicates in the seed are ignored.
func NewSet[T constraints.Ordered](values ...T) *OrderedSet[T] {
	return NewSetFunc(collection.Ordered[T](), values...)
}

// NewSetFunc builds an ordered set ordered by cmp, seeded with values.
// Panics when cmp is nil.
func NewSetFunc[T comparable](cmp collection.Compare[T], values ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{SortedList: *NewSortedFunc(cmp)}
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

// Insert adds data only when it is not already present.
func (s *OrderedSet[T]) Insert(data T) {
	if s.Contains(data) {
		return
	}
	s.SortedList.Insert(data)
}
