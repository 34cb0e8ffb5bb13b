// Package collection defines the contract shared by every container in this
// module: the Collection interface, the three-way comparator, the Match
// record returned by searches, and the sentinel errors surfaced by
// precondition failures.
//
// Concrete containers (list, rbtree, queue, ...) implement Collection for
// their element type and add structure-specific operations on top. All
// failures are precondition-style: an operation that returns an error leaves
// the container untouched.
package collection

// Collection is the set of operations every concrete container supports.
//
// The meaning of an index depends on the container's natural order:
// insertion order for lists, stacks and queues; sorted order for sorted
// lists, ordered sets and trees.
type Collection[T any] interface {
	// At returns the element at the given zero-based position.
	// Returns ErrOutOfRange when index >= Len().
	At(index int) (T, error)

	// Insert adds an element according to the container's semantics.
	Insert(data T)

	// RemoveAt removes and returns the element at the given position.
	// Returns ErrOutOfRange on an empty container or an invalid index.
	RemoveAt(index int) (T, error)

	// RemoveValue removes and returns the first element equal to value.
	// Returns ErrNotFound when the value is absent.
	RemoveValue(value T) (T, error)

	// Contains reports whether the value is present.
	Contains(value T) bool

	// Min returns the smallest element (or the front element for
	// insertion-ordered containers). Returns ErrEmpty when Len() == 0.
	Min() (T, error)

	// Max returns the largest element (or the back element for
	// insertion-ordered containers). Returns ErrEmpty when Len() == 0.
	Max() (T, error)

	// Len returns the number of elements currently stored.
	Len() int

	// Empty reports whether the container holds no elements.
	Empty() bool

	// Clear removes every element and resets the container to its
	// initialized state.
	Clear()

	// String returns a debug rendering. The format is not a stable
	// interchange format.
	String() string
}

// Slicer is implemented by containers that can export their elements as a
// slice in natural order. It is the basis for container equality.
type Slicer[T any] interface {
	Slice() []T
	Len() int
}

// Equal reports whether two containers hold element-wise equal values under
// cmp, comparing their natural-order projections. Containers of different
// lengths are never equal.
func Equal[T any](a, b Slicer[T], cmp Compare[T]) bool {
	if a.Len() != b.Len() {
		return false
	}

	as := a.Slice()
	bs := b.Slice()
	for i := range as {
		if cmp(as[i], bs[i]) != 0 {
			return false
		}
	}
	return true
}
