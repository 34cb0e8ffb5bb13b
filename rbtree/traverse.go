package rbtree

import (
	"github.com/gostructs/ds/collection"
	"github.com/gostructs/ds/queue"
)

// Visitor receives each key during a traversal. Returning true stops the
// walk early; returning false continues it.
type Visitor[T any] func(data T) bool

// InOrder walks left subtree, node, right subtree, visiting the keys in
// ascending order. Reports whether the visitor stopped the walk.
func (t *Tree[T]) InOrder(visit Visitor[T]) bool {
	t.walking++
	defer func() { t.walking-- }()
	return inorder(t.root, visit)
}

// ReverseOrder walks right subtree, node, left subtree, visiting the keys
// in descending order.
func (t *Tree[T]) ReverseOrder(visit Visitor[T]) bool {
	t.walking++
	defer func() { t.walking-- }()
	return reverseorder(t.root, visit)
}

// PreOrder visits each node before its subtrees.
func (t *Tree[T]) PreOrder(visit Visitor[T]) bool {
	t.walking++
	defer func() { t.walking-- }()
	return preorder(t.root, visit)
}

// PostOrder visits each node after both subtrees.
func (t *Tree[T]) PostOrder(visit Visitor[T]) bool {
	t.walking++
	defer func() { t.walking-- }()
	return postorder(t.root, visit)
}

// Breadth walks the tree level by level from the root, using a FIFO queue
// seeded with the root and visiting each node on dequeue.
func (t *Tree[T]) Breadth(visit Visitor[T]) bool {
	if t.root == nil {
		return false
	}
	t.walking++
	defer func() { t.walking-- }()

	q := queue.New[*node[T]]()
	q.Enqueue(t.root)
	for !q.Empty() {
		n, _ := q.Dequeue()
		if visit(n.data) {
			return true
		}
		if n.left != nil {
			q.Enqueue(n.left)
		}
		if n.right != nil {
			q.Enqueue(n.right)
		}
	}
	return false
}

// BreadthSearch scans the tree level by level for a key equal to data.
// An O(n) fallback; prefer Find for keyed lookups.
func (t *Tree[T]) BreadthSearch(data T) collection.Match[T] {
	match := collection.NoMatch[T]()
	t.Breadth(func(d T) bool {
		if t.cmp(data, d) == 0 {
			match = collection.FoundMatch(d, -1)
			return true
		}
		return false
	})
	return match
}

func inorder[T any](n *node[T], visit Visitor[T]) bool {
	if n == nil {
		return false
	}
	if inorder(n.left, visit) {
		return true
	}
	if visit(n.data) {
		return true
	}
	return inorder(n.right, visit)
}

func reverseorder[T any](n *node[T], visit Visitor[T]) bool {
	if n == nil {
		return false
	}
	if reverseorder(n.right, visit) {
		return true
	}
	if visit(n.data) {
		return true
	}
	return reverseorder(n.left, visit)
}

func preorder[T any](n *node[T], visit Visitor[T]) bool {
	if n == nil {
		return false
	}
	if visit(n.data) {
		return true
	}
	if preorder(n.left, visit) {
		return true
	}
	return preorder(n.right, visit)
}

func postorder[T any](n *node[T], visit Visitor[T]) bool {
	if n == nil {
		return false
	}
	if postorder(n.left, visit) {
		return true
	}
	if postorder(n.right, visit) {
		return true
	}
	return visit(n.data)
}
