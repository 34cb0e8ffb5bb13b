package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostructs/ds/collection"
)

func TestSortedInsertKeepsOrder(t *testing.T) {
	s := NewSorted(5, 1, 4, 2, 3)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.Slice())

	s.Insert(0)
	s.Insert(6)
	s.Insert(3)
	assert.Equal(t, []int{0, 1, 2, 3, 3, 4, 5, 6}, s.Slice())
}

func TestSortedFunc(t *testing.T) {
	desc := func(a, b int) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	}
	s := NewSortedFunc(desc, 1, 3, 2)
	assert.Equal(t, []int{3, 2, 1}, s.Slice())
}

func TestSortedNilComparatorPanics(t *testing.T) {
	assert.Panics(t, func() { NewSortedFunc[int](nil) })
}

func TestSortedMinMax(t *testing.T) {
	s := NewSorted(3, 1, 2)
	v, err := s.Min()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	v, err = s.Max()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestSortedDisabledOperations(t *testing.T) {
	s := NewSorted(1, 2, 3)
	assert.ErrorIs(t, s.Shuffle(), collection.ErrInvalidArgument)
	assert.ErrorIs(t, s.Swap(0, 1), collection.ErrInvalidArgument)
	assert.Nil(t, s.Reverse())
	assert.Equal(t, []int{1, 2, 3}, s.Slice())
}

func TestSortedRemove(t *testing.T) {
	s := NewSorted(4, 2, 3, 1)

	v, err := s.RemoveValue(3)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = s.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	assert.Equal(t, []int{2, 4}, s.Slice())
}

func TestSetUniqueInsert(t *testing.T) {
	s := NewSet(3, 1, 2, 3, 1)
	assert.Equal(t, []int{1, 2, 3}, s.Slice())
	assert.Equal(t, 3, s.Len())

	s.Insert(2)
	assert.Equal(t, 3, s.Len())

	s.Insert(0)
	assert.Equal(t, []int{0, 1, 2, 3}, s.Slice())
}

func TestSetStrings(t *testing.T) {
	s := NewSet("pear", "apple", "pear", "banana")
	assert.Equal(t, []string{"apple", "banana", "pear"}, s.Slice())
	assert.True(t, s.Contains("pear"))
	assert.False(t, s.Contains("plum"))
}
