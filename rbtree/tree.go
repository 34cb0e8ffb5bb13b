// Package rbtree implements a self-balancing ordered collection as a
// red-black binary search tree.
//
// The tree maintains the classical invariants after every public mutation:
// the root is black, a red node has no red child, and every root-to-leaf
// path carries the same number of black nodes. Those guarantees bound the
// height at 2*log2(n+1), giving O(log n) insert, remove and lookup.
//
// Duplicate keys (comparator result 0) are ignored on insert, so the tree
// behaves as an ordered set over the comparator's equivalence classes.
//
// Min and Max are O(1): the tree caches references to the left-most and
// right-most nodes and repairs them on insert and remove.
//
// The tree is not safe for concurrent use, and mutating it from inside a
// traversal callback is a contract violation: the tree detects it and
// panics rather than corrupt itself.
package rbtree

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/gostructs/ds/collection"
)

// Tree is an ordered collection backed by a red-black tree.
type Tree[T any] struct {
	root *node[T]
	min  *node[T] // left-most node, nil when empty
	max  *node[T] // right-most node, nil when empty
	size int
	cmp  collection.Compare[T]

	// walking counts active traversals; mutations panic while it is > 0.
	walking int
}

// New constructs an empty tree ordered by cmp. A nil comparator is a
// programmer error and panics.
func New[T any](cmp collection.Compare[T]) *Tree[T] {
	if cmp == nil {
		panic("rbtree: comparator must not be nil")
	}
	return &Tree[T]{cmp: cmp}
}

// NewOrdered constructs a tree over an ordered primitive type, seeded with
// the given values.
func NewOrdered[T constraints.Ordered](values ...T) *Tree[T] {
	t := New[T](collection.Ordered[T]())
	for _, v := range values {
		t.Insert(v)
	}
	return t
}

// Len returns the number of nodes in the tree.
func (t *Tree[T]) Len() int { return t.size }

// Empty reports whether the tree holds no nodes.
func (t *Tree[T]) Empty() bool { return t.size == 0 }

// Min returns the smallest key. Returns collection.ErrEmpty on an empty tree.
func (t *Tree[T]) Min() (T, error) {
	if t.min == nil {
		var zero T
		return zero, fmt.Errorf("min: %w", collection.ErrEmpty)
	}
	return t.min.data, nil
}

// Max returns the largest key. Returns collection.ErrEmpty on an empty tree.
func (t *Tree[T]) Max() (T, error) {
	if t.max == nil {
		var zero T
		return zero, fmt.Errorf("max: %w", collection.ErrEmpty)
	}
	return t.max.data, nil
}

// Clear drops every node. The garbage collector reclaims the detached
// structure, so no recursive teardown is needed.
func (t *Tree[T]) Clear() {
	t.guardMutate()
	t.root = nil
	t.min = nil
	t.max = nil
	t.size = 0
}

// Insert adds data to the tree. A key equal to an existing one (comparator
// result 0) is silently ignored.
func (t *Tree[T]) Insert(data T) {
	t.guardMutate()

	parent := (*node[T])(nil)
	cur := t.root
	for cur != nil {
		parent = cur
		r := t.cmp(data, cur.data)
		switch {
		case r < 0:
			cur = cur.left
		case r > 0:
			cur = cur.right
		default:
			return // duplicate
		}
	}

	n := newNode(data, parent)
	switch {
	case parent == nil:
		t.root = n
	case t.cmp(data, parent.data) < 0:
		parent.left = n
	default:
		parent.right = n
	}

	// Repair the cached extrema before rebalancing; rotations do not
	// change which node is left-most or right-most.
	if t.size == 0 {
		t.min, t.max = n, n
	} else {
		if t.cmp(data, t.min.data) < 0 {
			t.min = n
		}
		if t.cmp(data, t.max.data) > 0 {
			t.max = n
		}
	}
	t.size++

	t.insertFixup(n)
}

// Contains reports whether a key equal to data is present.
func (t *Tree[T]) Contains(data T) bool {
	return t.findNode(data) != nil
}

// Find performs an O(log n) descent for data and reports the outcome.
// The Match index is not computed for tree searches.
func (t *Tree[T]) Find(data T) collection.Match[T] {
	if n := t.findNode(data); n != nil {
		return collection.FoundMatch(n.data, -1)
	}
	return collection.NoMatch[T]()
}

// At returns the key at the given zero-based in-order position. The walk is
// O(n) worst case; positions 0 and Len()-1 hit the cached extrema.
func (t *Tree[T]) At(index int) (T, error) {
	var zero T
	if index < 0 || index >= t.size {
		return zero, fmt.Errorf("at %d of %d: %w", index, t.size, collection.ErrOutOfRange)
	}

	if index == 0 {
		return t.min.data, nil
	}
	if index == t.size-1 {
		return t.max.data, nil
	}

	var out T
	if index < t.size/2 {
		pos := 0
		t.InOrder(func(data T) bool {
			if pos == index {
				out = data
				return true
			}
			pos++
			return false
		})
	} else {
		pos := t.size - 1
		t.ReverseOrder(func(data T) bool {
			if pos == index {
				out = data
				return true
			}
			pos--
			return false
		})
	}
	return out, nil
}

// RemoveValue removes the node whose key equals value and returns the stored
// key. Returns collection.ErrNotFound when the key is absent.
func (t *Tree[T]) RemoveValue(value T) (T, error) {
	t.guardMutate()

	z := t.findNode(value)
	if z == nil {
		var zero T
		return zero, fmt.Errorf("remove %v: %w", value, collection.ErrNotFound)
	}
	return t.removeNode(z), nil
}

// RemoveAt removes the key at the given in-order position.
func (t *Tree[T]) RemoveAt(index int) (T, error) {
	v, err := t.At(index)
	if err != nil {
		return v, err
	}
	return t.RemoveValue(v)
}

// RemoveMin removes and returns the smallest key.
func (t *Tree[T]) RemoveMin() (T, error) {
	t.guardMutate()
	if t.min == nil {
		var zero T
		return zero, fmt.Errorf("remove min: %w", collection.ErrEmpty)
	}
	return t.removeNode(t.min), nil
}

// RemoveMax removes and returns the largest key.
func (t *Tree[T]) RemoveMax() (T, error) {
	t.guardMutate()
	if t.max == nil {
		var zero T
		return zero, fmt.Errorf("remove max: %w", collection.ErrEmpty)
	}
	return t.removeNode(t.max), nil
}

// Height returns the edge count of the longest root-to-leaf path. An empty
// or single-node tree has height 0.
func (t *Tree[T]) Height() int {
	h := height(t.root)
	if h < 0 {
		return 0
	}
	return h
}

// Slice exports the keys in ascending order.
func (t *Tree[T]) Slice() []T {
	out := make([]T, 0, t.size)
	t.InOrder(func(data T) bool {
		out = append(out, data)
		return false
	})
	return out
}

// Clone builds an independent tree with the same comparator and keys.
func (t *Tree[T]) Clone() *Tree[T] {
	c := New[T](t.cmp)
	t.InOrder(func(data T) bool {
		c.Insert(data)
		return false
	})
	return c
}

// Equal reports element-wise equality of the in-order projections.
func (t *Tree[T]) Equal(other *Tree[T]) bool {
	return collection.Equal[T](t, other, t.cmp)
}

// String renders the tree as "BinaryTree[size=N, height=H] {v1, v2, ...}"
// with the keys in ascending order.
func (t *Tree[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "BinaryTree[size=%d, height=%d]", t.size, t.Height())
	if t.root != nil {
		sb.WriteString(" {")
		first := true
		t.InOrder(func(data T) bool {
			if !first {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", data)
			first = false
			return false
		})
		sb.WriteString("}")
	}
	return sb.String()
}

// JSON aliases String; the rendering is for debugging only.
func (t *Tree[T]) JSON() string { return t.String() }

// ---- internals ----

func (t *Tree[T]) guardMutate() {
	if t.walking > 0 {
		panic("rbtree: mutation during active traversal")
	}
}

func (t *Tree[T]) findNode(data T) *node[T] {
	cur := t.root
	for cur != nil {
		r := t.cmp(data, cur.data)
		switch {
		case r < 0:
			cur = cur.left
		case r > 0:
			cur = cur.right
		default:
			return cur
		}
	}
	return nil
}

func height[T any](n *node[T]) int {
	if n == nil {
		return -1
	}
	hl := height(n.left)
	hr := height(n.right)
	if hl > hr {
		return hl + 1
	}
	return hr + 1
}

// leftmost and rightmost walk to the extremes of a subtree; used to repair
// the cached min/max after a removal.
func leftmost[T any](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func rightmost[T any](n *node[T]) *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// rotateLeft makes x.right take x's place; x becomes its left child.
// O(1), preserves the in-order sequence.
func (t *Tree[T]) rotateLeft(x *node[T]) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == nil:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

// rotateRight is the mirror of rotateLeft.
func (t *Tree[T]) rotateRight(x *node[T]) {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == nil:
		t.root = y
	case x == x.parent.right:
		x.parent.right = y
	default:
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}

// insertFixup restores the red-black invariants after inserting the red
// node x: recolor while the uncle is red, otherwise rotate the inner child
// outward and rotate the grandparent.
func (t *Tree[T]) insertFixup(x *node[T]) {
	for x != t.root && x.parent.isRed() {
		if x.parent == x.parent.parent.left {
			uncle := x.parent.parent.right
			if uncle.isRed() {
				x.parent.setBlack()
				uncle.setBlack()
				x.parent.parent.setRed()
				x = x.parent.parent
			} else {
				if x == x.parent.right {
					x = x.parent
					t.rotateLeft(x)
				}
				x.parent.setBlack()
				x.parent.parent.setRed()
				t.rotateRight(x.parent.parent)
			}
		} else {
			uncle := x.parent.parent.left
			if uncle.isRed() {
				x.parent.setBlack()
				uncle.setBlack()
				x.parent.parent.setRed()
				x = x.parent.parent
			} else {
				if x == x.parent.left {
					x = x.parent
					t.rotateRight(x)
				}
				x.parent.setBlack()
				x.parent.parent.setRed()
				t.rotateLeft(x.parent.parent)
			}
		}
	}
	t.root.setBlack()
}

// transplant replaces the subtree rooted at u with the one rooted at v.
func (t *Tree[T]) transplant(u, v *node[T]) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

// removeNode splices z out of the tree, running the delete fix-up when a
// black node was removed or moved. Returns the stored key.
func (t *Tree[T]) removeNode(z *node[T]) T {
	data := z.data
	wasMin := z == t.min
	wasMax := z == t.max

	y := z
	yWasBlack := y.isBlack()
	var x, xParent *node[T]

	switch {
	case z.left == nil:
		x = z.right
		xParent = z.parent
		t.transplant(z, z.right)
	case z.right == nil:
		x = z.left
		xParent = z.parent
		t.transplant(z, z.left)
	default:
		// Two children: the in-order successor y takes z's place and color;
		// the imbalance, if any, starts where y used to be.
		y = leftmost(z.right)
		yWasBlack = y.isBlack()
		x = y.right
		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.copyColor(z)
	}

	if yWasBlack {
		t.removeFixup(x, xParent)
	}

	t.size--
	if t.size == 0 {
		t.root = nil
		t.min = nil
		t.max = nil
	} else {
		if wasMin {
			t.min = leftmost(t.root)
		}
		if wasMax {
			t.max = rightmost(t.root)
		}
	}

	// Detach so outstanding iterators over z observe an end state.
	z.left, z.right, z.parent = nil, nil, nil
	return data
}

// removeFixup restores the black-height invariant after a black node was
// removed. x is the replacement (possibly a nil leaf) and xParent its
// parent; the four classical sibling cases apply, with at most three
// rotations in total.
func (t *Tree[T]) removeFixup(x, xParent *node[T]) {
	for x != t.root && x.isBlack() && xParent != nil {
		if x == xParent.left {
			w := xParent.right
			if w.isRed() {
				w.setBlack()
				xParent.setRed()
				t.rotateLeft(xParent)
				w = xParent.right
			}
			if w == nil {
				x = xParent
				xParent = x.parent
				continue
			}
			if w.left.isBlack() && w.right.isBlack() {
				w.setRed()
				x = xParent
				xParent = x.parent
			} else {
				if w.right.isBlack() {
					if w.left != nil {
						w.left.setBlack()
					}
					w.setRed()
					t.rotateRight(w)
					w = xParent.right
				}
				w.copyColor(xParent)
				xParent.setBlack()
				if w.right != nil {
					w.right.setBlack()
				}
				t.rotateLeft(xParent)
				x = t.root
				xParent = nil
			}
		} else {
			w := xParent.left
			if w.isRed() {
				w.setBlack()
				xParent.setRed()
				t.rotateRight(xParent)
				w = xParent.left
			}
			if w == nil {
				x = xParent
				xParent = x.parent
				continue
			}
			if w.left.isBlack() && w.right.isBlack() {
				w.setRed()
				x = xParent
				xParent = x.parent
			} else {
				if w.left.isBlack() {
					if w.right != nil {
						w.right.setBlack()
					}
					w.setRed()
					t.rotateLeft(w)
					w = xParent.left
				}
				w.copyColor(xParent)
				xParent.setBlack()
				if w.left != nil {
					w.left.setBlack()
				}
				t.rotateRight(xParent)
				x = t.root
				xParent = nil
			}
		}
	}
	if x != nil {
		x.setBlack()
	}
}
