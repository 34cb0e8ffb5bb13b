package lru

import "sync"

// Cache is an adaptive LRU cache. See the package documentation for the
// capacity controller. The zero value is not usable; construct with New.
type Cache[K comparable, V any] struct {
	mu   sync.RWMutex
	m    map[K]*entry[K, V]
	head *entry[K, V] // MRU
	tail *entry[K, V] // LRU

	capacity       int
	collectionSize int

	// cumulative counters, guarded by mu
	hits        uint64
	misses      uint64
	ejects      uint64
	totalAccess uint64
	totalSets   uint64

	opt Options[K, V]
}

// New builds a cache from opts, applying defaults for zero-valued fields.
func New[K comparable, V any](opts Options[K, V]) *Cache[K, V] {
	opts.withDefaults()
	c := &Cache[K, V]{
		m:        make(map[K]*entry[K, V], opts.Capacity),
		capacity: opts.Capacity,
		opt:      opts,
	}
	c.opt.Metrics.Capacity(c.capacity)
	return c
}

// Get returns the value for key and promotes the entry to most recently
// used. Every lookup, hit or miss, feeds the capacity controller.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.totalAccess++
	n, ok := c.m[key]
	if !ok {
		c.misses++
		c.opt.Metrics.Miss()
		c.updateCapacityLocked()
		var zero V
		return zero, false
	}

	c.moveToFront(n)
	c.hits++
	c.opt.Metrics.Hit()
	c.updateCapacityLocked()
	return n.val, true
}

// Set inserts or updates key. A new key is placed at the front; if that
// overflows the capacity the least recently used entry is ejected. An
// existing key is updated in place and promoted.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.m[key]; ok {
		n.val = value
		c.moveToFront(n)
		return
	}

	c.totalSets++
	n := &entry[K, V]{key: key, val: value}
	c.m[key] = n
	c.insertFront(n)

	if len(c.m) > c.capacity {
		c.ejects++
		c.ejectTailLocked()
	}
	c.opt.Metrics.Size(len(c.m))
}

// Contains reports whether key is resident. It touches neither the
// recency order nor the hit/miss counters, so probing is free of side
// effects on the capacity controller.
func (c *Cache[K, V]) Contains(key K) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.m[key]
	return ok
}

// Eject removes key regardless of its recency position. Returns false if
// the key is not resident. Explicit removal is not counted as an eviction
// and does not invoke OnEvict.
func (c *Cache[K, V]) Eject(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.m[key]
	if !ok {
		return false
	}
	c.removeEntry(n)
	delete(c.m, key)
	c.opt.Metrics.Size(len(c.m))
	return true
}

// Len returns the number of resident entries.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// Empty reports whether the cache holds no entries.
func (c *Cache[K, V]) Empty() bool {
	return c.Len() == 0
}

// Capacity returns the current adapted capacity.
func (c *Cache[K, V]) Capacity() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.capacity
}

// CollectionSize returns the last reported backing collection size.
func (c *Cache[K, V]) CollectionSize() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.collectionSize
}

// SetCollectionSize reports the size of the collection the cache fronts.
// The percentage bounds of the capacity controller are computed against
// this value.
func (c *Cache[K, V]) SetCollectionSize(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n < 0 {
		n = 0
	}
	c.collectionSize = n
}

// Clear drops every entry and resets the counters. The capacity returns
// to its configured starting point.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.m = make(map[K]*entry[K, V], c.opt.Capacity)
	c.head, c.tail = nil, nil
	c.capacity = c.opt.Capacity
	c.collectionSize = 0
	c.hits, c.misses, c.ejects = 0, 0, 0
	c.totalAccess, c.totalSets = 0, 0
	c.opt.Metrics.Capacity(c.capacity)
	c.opt.Metrics.Size(0)
}

// HitRatio returns hits / total lookups, or 0 before the first lookup.
func (c *Cache[K, V]) HitRatio() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return ratio(c.hits, c.totalAccess)
}

// MissRatio returns misses / total lookups, or 0 before the first lookup.
func (c *Cache[K, V]) MissRatio() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return ratio(c.misses, c.totalAccess)
}

// EjectRatio returns overflow ejections / total inserts, or 0 before the
// first insert.
func (c *Cache[K, V]) EjectRatio() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return ratio(c.ejects, c.totalSets)
}

// -------------------- internals (mu held) --------------------

// insertFront inserts n at MRU in O(1).
func (c *Cache[K, V]) insertFront(n *entry[K, V]) {
	n.prev = nil
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

// moveToFront promotes n to MRU in O(1).
func (c *Cache[K, V]) moveToFront(n *entry[K, V]) {
	if n == c.head {
		return
	}
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	if c.tail == n {
		c.tail = n.prev
	}
	n.prev = nil
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

// removeEntry unlinks n from the recency list in O(1).
func (c *Cache[K, V]) removeEntry(n *entry[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	if c.head == n {
		c.head = n.next
	}
	if c.tail == n {
		c.tail = n.prev
	}
	n.prev, n.next = nil, nil
}

// ejectTailLocked removes the LRU entry, reporting it to Metrics and the
// OnEvict callback. The eject counter is maintained by the callers that
// count the eviction.
func (c *Cache[K, V]) ejectTailLocked() {
	n := c.tail
	if n == nil {
		return
	}
	c.removeEntry(n)
	delete(c.m, n.key)
	c.opt.Metrics.Eject()
	if cb := c.opt.OnEvict; cb != nil {
		cb(n.key, n.val)
	}
}

func ratio(part, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}
