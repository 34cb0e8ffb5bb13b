// Package list provides a doubly linked list and the ordered containers
// layered on top of it.
//
// List keeps elements in insertion order with O(1) front/back operations
// and bidirectional index access that walks from whichever end is closer.
// An internal adaptive LRU cache remembers value-to-node mappings so
// repeated lookups of hot values skip the linear scan.
//
// SortedList keeps its elements in non-decreasing comparator order and
// disables the order-destroying operations. OrderedSet further makes
// insertion idempotent, yielding a sorted collection of unique values.
package list
