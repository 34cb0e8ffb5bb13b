package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostructs/ds/collection"
)

func TestEnqueueDequeue(t *testing.T) {
	q := New[int]()
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	require.Equal(t, 3, q.Len())

	for _, want := range []int{1, 2, 3} {
		v, err := q.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}

	assert.True(t, q.Empty())
	_, err := q.Dequeue()
	assert.ErrorIs(t, err, collection.ErrEmpty)
}

func TestFrontBack(t *testing.T) {
	q := New[string]()
	_, err := q.Front()
	assert.ErrorIs(t, err, collection.ErrEmpty)
	_, err = q.Back()
	assert.ErrorIs(t, err, collection.ErrEmpty)

	q.Enqueue("a")
	q.Enqueue("b")

	v, err := q.Front()
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	v, err = q.Back()
	require.NoError(t, err)
	assert.Equal(t, "b", v)
	assert.Equal(t, 2, q.Len())
}

func TestEject(t *testing.T) {
	q := New(1, 2, 3)

	v, err := q.Eject(2)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, []int{1, 3}, q.Slice())

	_, err = q.Eject(9)
	assert.ErrorIs(t, err, collection.ErrNotFound)
}

func TestDrain(t *testing.T) {
	q := New(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, q.Drain())
	assert.True(t, q.Empty())
	assert.Empty(t, q.Drain())
}

func TestContractOperations(t *testing.T) {
	q := New(10, 20, 30)

	v, err := q.At(1)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	assert.True(t, q.Contains(30))
	assert.False(t, q.Contains(99))

	v, err = q.Min()
	require.NoError(t, err)
	assert.Equal(t, 10, v)
	v, err = q.Max()
	require.NoError(t, err)
	assert.Equal(t, 30, v)

	v, err = q.RemoveAt(1)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	q.Insert(40)
	assert.Equal(t, []int{10, 30, 40}, q.Slice())

	q.Clear()
	assert.True(t, q.Empty())
}

func TestEqualAndString(t *testing.T) {
	a := New(1, 2)
	b := New(1, 2)
	assert.True(t, a.Equal(b))

	b.Enqueue(3)
	assert.False(t, a.Equal(b))

	assert.Equal(t, `[{"data":1,"color":"red"},{"data":2,"color":"red"}]`, a.String())
	assert.Equal(t, a.String(), a.JSON())
}

func TestDequeUnbounded(t *testing.T) {
	d := NewDeque[int](0)
	for i := 0; i < 100; i++ {
		d.PushBack(i)
	}
	assert.Equal(t, 100, d.Len())
}

func TestDequePushPop(t *testing.T) {
	d := NewDeque[int](10)
	d.PushBack(2)
	d.PushFront(1)
	d.PushBack(3)
	assert.Equal(t, []int{1, 2, 3}, d.Slice())

	v, err := d.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = d.PopBack()
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = d.PopBack()
	require.NoError(t, err)
	_, err = d.PopBack()
	assert.ErrorIs(t, err, collection.ErrEmpty)
	_, err = d.PopFront()
	assert.ErrorIs(t, err, collection.ErrEmpty)
}

func TestDequeOverflow(t *testing.T) {
	d := NewDeque(4, 1, 2, 3, 4)
	require.Equal(t, []int{1, 2, 3, 4}, d.Slice())

	// Full deque: pushing on either end drops the front element first.
	d.PushBack(5)
	assert.Equal(t, []int{2, 3, 4, 5}, d.Slice())

	d.PushFront(6)
	assert.Equal(t, []int{6, 3, 4, 5}, d.Slice())
	assert.Equal(t, 4, d.Len())
}

func TestDequeMaxSize(t *testing.T) {
	d := NewDeque[int](3)
	assert.Equal(t, 3, d.MaxSize())
}
