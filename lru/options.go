package lru

import "math"

// Default tuning values applied by New when the corresponding Options
// field is left at its zero value.
const (
	// DefaultMinCapacity is the floor the capacity can never adapt below.
	// It is also the capacity used when Options.Capacity is 0.
	DefaultMinCapacity = 100

	// DefaultMaxCapacity leaves the upper bound effectively open.
	DefaultMaxCapacity = math.MaxInt

	// DefaultThreshold is the number of lookups between capacity
	// re-evaluations.
	DefaultThreshold = 1000

	// DefaultTargetHitRatio is the hit ratio the controller steers toward.
	DefaultTargetHitRatio = 0.8

	// DefaultNoise is the half-width of the dead band around the target
	// within which the capacity is left alone.
	DefaultNoise = 0.05

	// DefaultIncreaseFactor grows the capacity when the hit ratio is low.
	DefaultIncreaseFactor = 1.2

	// DefaultDecreaseFactor shrinks the capacity when the hit ratio is high.
	DefaultDecreaseFactor = 0.9

	// DefaultMinPercentage and DefaultMaxPercentage bound the capacity
	// relative to the backing collection size, when one is reported.
	DefaultMinPercentage = 0.05
	DefaultMaxPercentage = 0.40
)

// Options configures the cache behavior. Zero values are safe;
// sane defaults are applied in New():
//   - Capacity <= 0      => DefaultMinCapacity
//   - nil Metrics        => NoopMetrics
//   - zero tuning fields => the Default* constants above
type Options[K comparable, V any] struct {
	// Capacity is the initial entry count limit. The adaptive controller
	// moves it afterwards, within the configured bounds.
	Capacity int

	// TargetHitRatio is the hit ratio the controller steers toward.
	TargetHitRatio float64

	// Noise is the half-width of the dead band around TargetHitRatio.
	Noise float64

	// Threshold is the number of lookups between capacity re-evaluations.
	Threshold uint64

	// IncreaseFactor multiplies the capacity when the hit ratio falls
	// below TargetHitRatio - Noise.
	IncreaseFactor float64

	// DecreaseFactor multiplies the capacity when the hit ratio rises
	// above TargetHitRatio + Noise.
	DecreaseFactor float64

	// MinCapacity and MaxCapacity are absolute bounds on the adapted
	// capacity.
	MinCapacity int
	MaxCapacity int

	// MinPercentage and MaxPercentage bound the adapted capacity as a
	// fraction of the backing collection size (see SetCollectionSize).
	MinPercentage float64
	MaxPercentage float64

	// OnEvict is called for every entry the cache ejects on overflow or
	// shrink, under the cache lock; keep callbacks lightweight. Entries
	// removed explicitly via Eject or Clear do not trigger it.
	OnEvict func(key K, value V)

	// Metrics receives observability callbacks. Nil => NoopMetrics.
	Metrics Metrics
}

// withDefaults fills in the zero-valued fields.
func (o *Options[K, V]) withDefaults() {
	if o.MinCapacity <= 0 {
		o.MinCapacity = DefaultMinCapacity
	}
	if o.MaxCapacity <= 0 {
		o.MaxCapacity = DefaultMaxCapacity
	}
	if o.Capacity <= 0 {
		o.Capacity = o.MinCapacity
	}
	if o.TargetHitRatio <= 0 {
		o.TargetHitRatio = DefaultTargetHitRatio
	}
	if o.Noise <= 0 {
		o.Noise = DefaultNoise
	}
	if o.Threshold == 0 {
		o.Threshold = DefaultThreshold
	}
	if o.IncreaseFactor <= 0 {
		o.IncreaseFactor = DefaultIncreaseFactor
	}
	if o.DecreaseFactor <= 0 {
		o.DecreaseFactor = DefaultDecreaseFactor
	}
	if o.MinPercentage <= 0 {
		o.MinPercentage = DefaultMinPercentage
	}
	if o.MaxPercentage <= 0 {
		o.MaxPercentage = DefaultMaxPercentage
	}
	if o.Metrics == nil {
		o.Metrics = NoopMetrics{}
	}
}
