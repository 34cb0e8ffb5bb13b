package lru

import "fmt"

// Stats is a point-in-time snapshot of the cache counters and the derived
// ratios the capacity controller works from.
type Stats struct {
	TargetHitRatio float64
	HitRatio       float64
	Hits           uint64
	MissRatio      float64
	Misses         uint64
	TotalAccess    uint64
	EjectRatio     float64
	Ejects         uint64
	TotalSets      uint64
	Capacity       int
	Size           int
}

// Stats returns a consistent snapshot of the counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Stats{
		TargetHitRatio: c.opt.TargetHitRatio,
		HitRatio:       ratio(c.hits, c.totalAccess),
		Hits:           c.hits,
		MissRatio:      ratio(c.misses, c.totalAccess),
		Misses:         c.misses,
		TotalAccess:    c.totalAccess,
		EjectRatio:     ratio(c.ejects, c.totalSets),
		Ejects:         c.ejects,
		TotalSets:      c.totalSets,
		Capacity:       c.capacity,
		Size:           len(c.m),
	}
}

// String renders the snapshot as a comma separated list of fields,
// intended for debug output.
func (s Stats) String() string {
	return fmt.Sprintf(
		"targetHitRatio: %.5g, hitRatio: %.5g, hits: %d, missRatio: %.5g, "+
			"misses: %d, totalAccess: %d, ejectRatio: %.5g, ejects: %d, "+
			"totalSets: %d, capacity: %d, size: %d",
		s.TargetHitRatio, s.HitRatio, s.Hits, s.MissRatio,
		s.Misses, s.TotalAccess, s.EjectRatio, s.Ejects,
		s.TotalSets, s.Capacity, s.Size)
}

// String renders the cache's current statistics.
func (c *Cache[K, V]) String() string {
	return c.Stats().String()
}
