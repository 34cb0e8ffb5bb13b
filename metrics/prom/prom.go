// Package prom exports lru.Metrics to Prometheus.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gostructs/ds/lru"
)

// Adapter implements lru.Metrics and exports Prometheus counters/gauges.
// Safe for concurrent use; all Prometheus metric types are goroutine-safe.
type Adapter struct {
	hits     prometheus.Counter
	misses   prometheus.Counter
	ejects   prometheus.Counter
	capacity prometheus.Gauge
	size     prometheus.Gauge
}

// New constructs a Prometheus metrics adapter.
//   - reg:          registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "hits_total",
			Help:        "Cache hits",
			ConstLabels: constLabels,
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "misses_total",
			Help:        "Cache misses",
			ConstLabels: constLabels,
		}),
		ejects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "ejects_total",
			Help:        "Entries ejected to make room",
			ConstLabels: constLabels,
		}),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "capacity_entries",
			Help:        "Current adaptive capacity",
			ConstLabels: constLabels,
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "size_entries",
			Help:        "Number of resident entries",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.hits, a.misses, a.ejects, a.capacity, a.size)
	return a
}

// Hit increments the hit counter.
func (a *Adapter) Hit() { a.hits.Inc() }

// Miss increments the miss counter.
func (a *Adapter) Miss() { a.misses.Inc() }

// Eject increments the eject counter.
func (a *Adapter) Eject() { a.ejects.Inc() }

// Capacity updates the adaptive capacity gauge.
func (a *Adapter) Capacity(n int) { a.capacity.Set(float64(n)) }

// Size updates the resident entry gauge.
func (a *Adapter) Size(n int) { a.size.Set(float64(n)) }

// Compile-time check: ensure Adapter implements lru.Metrics.
var _ lru.Metrics = (*Adapter)(nil)
