// Package gtree provides a general (n-ary) tree keyed by path strings.
//
// Every node is addressed by a path such as "a/b/c"; the delimiters
// '/', '\' and '|' are interchangeable on input. Inserting a path
// creates any missing ancestors, so the tree behaves like a hierarchical
// key-value store. Children are kept in sorted key order, which makes
// traversals deterministic.
package gtree

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gostructs/ds/collection"
	"github.com/gostructs/ds/queue"
)

// node is a tree cell addressed by the key path from the root.
type node[T any] struct {
	key      string
	data     T
	children map[string]*node[T]
}

func (n *node[T]) child(key string) *node[T] {
	return n.children[key]
}

// sortedChildren returns the children in ascending key order.
func (n *node[T]) sortedChildren() []*node[T] {
	keys := make([]string, 0, len(n.children))
	for k := range n.children {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]*node[T], 0, len(keys))
	for _, k := range keys {
		out = append(out, n.children[k])
	}
	return out
}

// Tree maps path strings to payloads.
type Tree[T any] struct {
	root *node[T] // synthetic, holds the top-level children
	size int
}

// New constructs an empty general tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{root: &node[T]{children: make(map[string]*node[T])}}
}

// Len returns the number of nodes, interior nodes included.
func (t *Tree[T]) Len() int { return t.size }

// Empty reports whether the tree holds no nodes.
func (t *Tree[T]) Empty() bool { return t.size == 0 }

// Clear removes every node.
func (t *Tree[T]) Clear() {
	t.root = &node[T]{children: make(map[string]*node[T])}
	t.size = 0
}

// Insert assigns data to the node addressed by path, creating missing
// ancestors with zero-value payloads. Inserting over an existing node
// overwrites its payload. Returns collection.ErrInvalidArgument when
// the path has no elements.
func (t *Tree[T]) Insert(path string, data T) error {
	elements := SplitPath(path)
	if len(elements) == 0 {
		return fmt.Errorf("insert %q: %w", path, collection.ErrInvalidArgument)
	}

	cur := t.root
	for _, key := range elements {
		next := cur.child(key)
		if next == nil {
			next = &node[T]{key: key, children: make(map[string]*node[T])}
			cur.children[key] = next
			t.size++
		}
		cur = next
	}
	cur.data = data
	return nil
}

// Find resolves path and reports the payload stored at it.
func (t *Tree[T]) Find(path string) collection.Match[T] {
	if n := t.findNode(path); n != nil {
		return collection.FoundMatch(n.data, -1)
	}
	return collection.NoMatch[T]()
}

// Contains reports whether a node exists at path.
func (t *Tree[T]) Contains(path string) bool {
	return t.findNode(path) != nil
}

// Remove deletes the node at path together with its entire subtree and
// returns the removed node's payload. Returns collection.ErrNotFound
// when the path does not resolve.
func (t *Tree[T]) Remove(path string) (T, error) {
	var zero T
	elements := SplitPath(path)
	if len(elements) == 0 {
		return zero, fmt.Errorf("remove %q: %w", path, collection.ErrNotFound)
	}

	parent := t.root
	for _, key := range elements[:len(elements)-1] {
		parent = parent.child(key)
		if parent == nil {
			return zero, fmt.Errorf("remove %q: %w", path, collection.ErrNotFound)
		}
	}

	last := elements[len(elements)-1]
	target := parent.child(last)
	if target == nil {
		return zero, fmt.Errorf("remove %q: %w", path, collection.ErrNotFound)
	}

	delete(parent.children, last)
	t.size -= countNodes(target)
	return target.data, nil
}

// Breadth walks the tree level by level, visiting children in sorted
// key order. The visitor receives each node's key and payload and stops
// the walk by returning true.
func (t *Tree[T]) Breadth(visit func(key string, data T) bool) {
	if t.size == 0 {
		return
	}
	q := queue.New[*node[T]]()
	for _, c := range t.root.sortedChildren() {
		q.Enqueue(c)
	}
	for !q.Empty() {
		n, err := q.Dequeue()
		if err != nil {
			return
		}
		if visit(n.key, n.data) {
			return
		}
		for _, c := range n.sortedChildren() {
			q.Enqueue(c)
		}
	}
}

// BreadthSearch scans level by level for the first node whose key
// equals key, regardless of its full path.
func (t *Tree[T]) BreadthSearch(key string) collection.Match[T] {
	match := collection.NoMatch[T]()
	t.Breadth(func(k string, data T) bool {
		if k == key {
			match = collection.FoundMatch(data, -1)
			return true
		}
		return false
	})
	return match
}

// Keys returns every node key in breadth order.
func (t *Tree[T]) Keys() []string {
	out := make([]string, 0, t.size)
	t.Breadth(func(key string, _ T) bool {
		out = append(out, key)
		return false
	})
	return out
}

// Height returns the edge count of the longest path from a top-level
// node to a leaf. An empty tree or one with only top-level nodes has
// height 0.
func (t *Tree[T]) Height() int {
	h := 0
	for _, c := range t.root.sortedChildren() {
		if d := depth(c); d > h {
			h = d
		}
	}
	return h
}

// String renders the size, height and breadth-order keys.
func (t *Tree[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "GeneralTree[size=%d, height=%d]", t.size, t.Height())
	if t.size > 0 {
		sb.WriteString(" {")
		first := true
		t.Breadth(func(key string, _ T) bool {
			if !first {
				sb.WriteString(", ")
			}
			sb.WriteString(key)
			first = false
			return false
		})
		sb.WriteString("}")
	}
	return sb.String()
}

// JSON is an alias for String.
func (t *Tree[T]) JSON() string { return t.String() }

// findNode resolves path element by element from the root.
func (t *Tree[T]) findNode(path string) *node[T] {
	elements := SplitPath(path)
	if len(elements) == 0 {
		return nil
	}
	cur := t.root
	for _, key := range elements {
		cur = cur.child(key)
		if cur == nil {
			return nil
		}
	}
	return cur
}

func countNodes[T any](n *node[T]) int {
	count := 1
	for _, c := range n.children {
		count += countNodes(c)
	}
	return count
}

func depth[T any](n *node[T]) int {
	h := 0
	for _, c := range n.children {
		if d := depth(c) + 1; d > h {
			h = d
		}
	}
	return h
}
