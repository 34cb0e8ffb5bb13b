package rbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T any](walk func(Visitor[T]) bool) []T {
	var out []T
	walk(func(data T) bool {
		out = append(out, data)
		return false
	})
	return out
}

func TestTraversalOrders(t *testing.T) {
	tr := NewOrdered(1, 2, 3, 4, 5, 6, 7)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, collect(tr.InOrder))
	assert.Equal(t, []int{2, 1, 4, 3, 6, 5, 7}, collect(tr.PreOrder))
	assert.Equal(t, []int{1, 3, 5, 7, 6, 4, 2}, collect(tr.PostOrder))
	assert.Equal(t, []int{7, 6, 5, 4, 3, 2, 1}, collect(tr.ReverseOrder))
	assert.Equal(t, []int{2, 1, 4, 3, 6, 5, 7}, collect(tr.Breadth))
}

func TestTraversalEmptyTree(t *testing.T) {
	tr := NewOrdered[int]()
	assert.Empty(t, collect(tr.InOrder))
	assert.Empty(t, collect(tr.PreOrder))
	assert.Empty(t, collect(tr.PostOrder))
	assert.Empty(t, collect(tr.ReverseOrder))
	assert.Empty(t, collect(tr.Breadth))
}

func TestTraversalShortCircuit(t *testing.T) {
	tr := NewOrdered(1, 2, 3, 4, 5, 6, 7)

	var seen []int
	stopped := tr.InOrder(func(data int) bool {
		seen = append(seen, data)
		return data == 3
	})
	assert.True(t, stopped)
	assert.Equal(t, []int{1, 2, 3}, seen)

	stopped = tr.InOrder(func(data int) bool { return false })
	assert.False(t, stopped)

	seen = nil
	tr.Breadth(func(data int) bool {
		seen = append(seen, data)
		return data == 4
	})
	assert.Equal(t, []int{2, 1, 4}, seen)
}

func TestBreadthSearch(t *testing.T) {
	tr := NewOrdered(1, 2, 3, 4, 5, 6, 7)

	m := tr.BreadthSearch(5)
	require.True(t, m.Found)
	assert.Equal(t, 5, m.Data)

	m = tr.BreadthSearch(42)
	assert.False(t, m.Found)
}

func TestTraversalAfterRebalance(t *testing.T) {
	// Ascending inserts force every left rotation path; the orders must
	// reflect the rebalanced shape, not the insertion order.
	tr := NewOrdered[int]()
	for i := 1; i <= 15; i++ {
		tr.Insert(i)
	}

	in := collect(tr.InOrder)
	for i, v := range in {
		assert.Equal(t, i+1, v)
	}

	breadth := collect(tr.Breadth)
	require.Len(t, breadth, 15)
	assert.Equal(t, tr.root.data, breadth[0])
	checkInvariants(t, tr)
}
