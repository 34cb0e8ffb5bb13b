package lru

import "github.com/gostructs/ds/internal/mathutil"

// updateCapacityLocked re-evaluates the capacity once every
// Threshold lookups, steering the hit ratio toward the target band.
func (c *Cache[K, V]) updateCapacityLocked() {
	if c.totalAccess%c.opt.Threshold != 0 {
		return
	}

	var target int
	hitRatio := ratio(c.hits, c.totalAccess)

	switch {
	case hitRatio < c.opt.TargetHitRatio-c.opt.Noise:
		target = int(float64(c.capacity) * c.opt.IncreaseFactor)
	case hitRatio > c.opt.TargetHitRatio+c.opt.Noise:
		target = int(float64(c.capacity) * c.opt.DecreaseFactor)
	default:
		return
	}

	lo := max(int(float64(c.collectionSize)*c.opt.MinPercentage), c.opt.MinCapacity)
	hi := min(int(float64(c.collectionSize)*c.opt.MaxPercentage), c.opt.MaxCapacity)
	c.resizeLocked(mathutil.Clamp(target, lo, hi))
}

// resizeLocked applies a new capacity. Growing only widens the limit;
// shrinking ejects entries from the cold end until the cache fits.
func (c *Cache[K, V]) resizeLocked(capacity int) {
	if capacity == c.capacity {
		return
	}

	c.capacity = capacity
	c.opt.Metrics.Capacity(capacity)

	for len(c.m) > c.capacity {
		c.ejectTailLocked()
	}
	c.opt.Metrics.Size(len(c.m))
}
