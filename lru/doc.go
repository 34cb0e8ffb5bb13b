// Package lru implements a self-tuning least-recently-used cache.
//
// The cache maps keys to values and keeps every resident key on a recency
// list, most recent first. Get promotes the key to the front; when a Set
// overflows the capacity the key at the back is ejected. Both operations
// are O(1).
//
// Unlike a fixed-size LRU, the capacity adapts to the observed hit ratio.
// Every Threshold lookups the cache compares its cumulative hit ratio
// against a target band: below the band the capacity grows by
// IncreaseFactor, above it the capacity shrinks by DecreaseFactor. The new
// capacity is clamped both by absolute bounds (MinCapacity, MaxCapacity)
// and by percentage bounds relative to the size of the backing collection
// the cache fronts (MinPercentage, MaxPercentage of the value passed to
// SetCollectionSize). Shrinking ejects entries from the cold end until the
// cache fits.
//
// All methods are safe for concurrent use. Observability is pluggable
// through the Metrics interface; see metrics/prom for a Prometheus-backed
// implementation.
//
//	c := lru.New[string, int](lru.Options[string, int]{Capacity: 500})
//	c.Set("a", 1)
//	if v, ok := c.Get("a"); ok {
//		fmt.Println(v)
//	}
package lru
