package lru

// entry is a cell in the intrusive recency list (head=MRU, tail=LRU).
type entry[K comparable, V any] struct {
	key  K
	val  V
	prev *entry[K, V]
	next *entry[K, V]
}
