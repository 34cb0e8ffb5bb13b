package lru

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	c := New[string, int](Options[string, int]{})
	assert.Equal(t, DefaultMinCapacity, c.Capacity())
	assert.True(t, c.Empty())
	assert.Equal(t, 0, c.Len())
}

func TestNewSmallCapacityKept(t *testing.T) {
	c := New[string, int](Options[string, int]{Capacity: 3})
	assert.Equal(t, 3, c.Capacity())
}

func TestSetGet(t *testing.T) {
	c := New[string, int](Options[string, int]{Capacity: 3})
	c.Set("a", 1)
	c.Set("b", 2)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = c.Get("nope")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestOverflowEjectsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](Options[string, int]{Capacity: 3})
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	// Touch "a" so "b" becomes the coldest entry.
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Set("d", 4)
	assert.Equal(t, 3, c.Len())
	assert.False(t, c.Contains("b"))
	assert.True(t, c.Contains("a"))
	assert.True(t, c.Contains("c"))
	assert.True(t, c.Contains("d"))
}

func TestUpdateExistingPromotes(t *testing.T) {
	c := New[string, int](Options[string, int]{Capacity: 3})
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	// Updating "a" promotes it, so "b" is ejected on the next overflow.
	c.Set("a", 10)
	c.Set("d", 4)

	assert.False(t, c.Contains("b"))
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)

	// The update did not count as a new insert.
	assert.Equal(t, uint64(4), c.Stats().TotalSets)
}

func TestContainsHasNoSideEffects(t *testing.T) {
	c := New[string, int](Options[string, int]{Capacity: 2})
	c.Set("a", 1)
	c.Set("b", 2)

	for i := 0; i < 100; i++ {
		c.Contains("a")
		c.Contains("missing")
	}
	st := c.Stats()
	assert.Zero(t, st.TotalAccess)
	assert.Zero(t, st.Hits)
	assert.Zero(t, st.Misses)

	// Probing "a" did not promote it; it is still the coldest entry.
	c.Set("c", 3)
	assert.False(t, c.Contains("a"))
	assert.True(t, c.Contains("b"))
}

func TestEject(t *testing.T) {
	c := New[string, int](Options[string, int]{Capacity: 3})
	c.Set("a", 1)
	c.Set("b", 2)

	assert.True(t, c.Eject("a"))
	assert.False(t, c.Eject("a"))
	assert.False(t, c.Contains("a"))
	assert.Equal(t, 1, c.Len())

	// Explicit removal is not an eviction.
	assert.Zero(t, c.Stats().Ejects)
}

func TestClear(t *testing.T) {
	c := New[string, int](Options[string, int]{Capacity: 3})
	c.Set("a", 1)
	c.Get("a")
	c.Get("nope")
	c.SetCollectionSize(50)

	c.Clear()
	assert.True(t, c.Empty())
	assert.Equal(t, 3, c.Capacity())
	assert.Equal(t, 0, c.CollectionSize())

	st := c.Stats()
	assert.Zero(t, st.TotalAccess)
	assert.Zero(t, st.TotalSets)
	assert.Zero(t, st.Hits)
	assert.Zero(t, st.Misses)
}

func TestRatios(t *testing.T) {
	c := New[string, int](Options[string, int]{Capacity: 100})
	assert.Zero(t, c.HitRatio())
	assert.Zero(t, c.MissRatio())
	assert.Zero(t, c.EjectRatio())

	c.Set("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("b")
	c.Get("c")

	assert.InDelta(t, 0.5, c.HitRatio(), 1e-9)
	assert.InDelta(t, 0.5, c.MissRatio(), 1e-9)
}

func TestAdaptiveGrowOnLowHitRatio(t *testing.T) {
	c := New[string, int](Options[string, int]{Capacity: 100, Threshold: 10})
	c.SetCollectionSize(10000)

	// All misses: hit ratio 0 is far below the target band, so the
	// controller grows, clamped up to the percentage floor.
	for i := 0; i < 10; i++ {
		c.Get(fmt.Sprintf("missing-%d", i))
	}
	assert.Equal(t, 500, c.Capacity()) // max(10000*0.05, 100)
}

func TestAdaptiveShrinkOnHighHitRatio(t *testing.T) {
	c := New[string, int](Options[string, int]{Capacity: 1000, Threshold: 10})
	c.SetCollectionSize(10000)
	c.Set("hot", 1)

	for i := 0; i < 10; i++ {
		_, ok := c.Get("hot")
		require.True(t, ok)
	}
	assert.Equal(t, 900, c.Capacity())
}

func TestAdaptiveDeadBandHolds(t *testing.T) {
	c := New[string, int](Options[string, int]{Capacity: 1000, Threshold: 10})
	c.SetCollectionSize(10000)
	c.Set("hot", 1)

	// 8 hits / 10 lookups = exactly the target: no change.
	for i := 0; i < 8; i++ {
		c.Get("hot")
	}
	c.Get("miss-1")
	c.Get("miss-2")
	assert.Equal(t, 1000, c.Capacity())
}

func TestAdaptiveShrinkEjectsColdEntries(t *testing.T) {
	c := New[int, int](Options[int, int]{Capacity: 1000, Threshold: 10})
	c.SetCollectionSize(1600) // bounds [100, 640]

	for i := 0; i < 800; i++ {
		c.Set(i, i)
	}
	require.Equal(t, 800, c.Len())

	c.Set(0, 0) // promote so the hot key survives the shrink
	for i := 0; i < 10; i++ {
		_, ok := c.Get(0)
		require.True(t, ok)
	}

	assert.Equal(t, 640, c.Capacity())
	assert.Equal(t, 640, c.Len())
	assert.True(t, c.Contains(0))
}

func TestAdaptivePinnedWithoutCollectionSize(t *testing.T) {
	// With no reported collection size both percentage bounds collapse,
	// so the capacity pins at MinCapacity.
	c := New[string, int](Options[string, int]{Capacity: 100, Threshold: 10})
	for i := 0; i < 10; i++ {
		c.Get(fmt.Sprintf("missing-%d", i))
	}
	assert.Equal(t, DefaultMinCapacity, c.Capacity())
}

func TestOnEvictCallback(t *testing.T) {
	var evicted []string
	c := New[string, int](Options[string, int]{
		Capacity: 2,
		OnEvict:  func(k string, v int) { evicted = append(evicted, k) },
	})
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	require.Len(t, evicted, 1)
	assert.Equal(t, "a", evicted[0])

	// Explicit removal does not fire the callback.
	c.Eject("b")
	assert.Len(t, evicted, 1)
}

type countingMetrics struct {
	hits, misses, ejects int
	capacity, size       int
}

func (m *countingMetrics) Hit()           { m.hits++ }
func (m *countingMetrics) Miss()          { m.misses++ }
func (m *countingMetrics) Eject()         { m.ejects++ }
func (m *countingMetrics) Capacity(n int) { m.capacity = n }
func (m *countingMetrics) Size(n int)     { m.size = n }

func TestMetricsHooks(t *testing.T) {
	m := &countingMetrics{}
	c := New[string, int](Options[string, int]{Capacity: 2, Metrics: m})
	assert.Equal(t, 2, m.capacity)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)
	c.Get("b")
	c.Get("gone")

	assert.Equal(t, 1, m.hits)
	assert.Equal(t, 1, m.misses)
	assert.Equal(t, 1, m.ejects)
	assert.Equal(t, 2, m.size)
}

func TestStatsString(t *testing.T) {
	c := New[string, int](Options[string, int]{Capacity: 5})
	c.Set("a", 1)
	c.Get("a")

	s := c.String()
	assert.Contains(t, s, "targetHitRatio: 0.8")
	assert.Contains(t, s, "hits: 1")
	assert.Contains(t, s, "capacity: 5")
	assert.Contains(t, s, "size: 1")
}

func BenchmarkCacheGet(b *testing.B) {
	c := New[int, int](Options[int, int]{Capacity: 1024})
	for i := 0; i < 1024; i++ {
		c.Set(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(i & 1023)
	}
}

func BenchmarkCacheSet(b *testing.B) {
	c := New[int, int](Options[int, int]{Capacity: 1024})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set(i&4095, i)
	}
}
