package rbtree

import "github.com/gostructs/ds/bitflag"

// colorBlack is bit 0 of the node flag word: 0 = red, 1 = black.
const colorBlack uint8 = 1 << 0

// node is a tree cell. left and right are owning edges; parent is a
// back-reference and never owns the node it points to.
type node[T any] struct {
	data   T
	left   *node[T]
	right  *node[T]
	parent *node[T]
	flags  bitflag.Flag8
}

// newNode creates a red node, the color every freshly inserted node starts
// with before the insert fix-up runs.
func newNode[T any](data T, parent *node[T]) *node[T] {
	return &node[T]{data: data, parent: parent}
}

// isRed reports whether n is a red node. Absent (nil) children are black.
func (n *node[T]) isRed() bool {
	return n != nil && !n.flags.Has(colorBlack)
}

// isBlack reports whether n is black. Absent (nil) children count as black
// leaves, per the red-black leaf convention.
func (n *node[T]) isBlack() bool {
	return n == nil || n.flags.Has(colorBlack)
}

func (n *node[T]) setRed()   { n.flags.Unset(colorBlack) }
func (n *node[T]) setBlack() { n.flags.Set(colorBlack) }

// copyColor gives n the color of other.
func (n *node[T]) copyColor(other *node[T]) {
	if other.isBlack() {
		n.setBlack()
	} else {
		n.setRed()
	}
}
