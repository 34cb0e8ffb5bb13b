package lru

// Metrics exposes cache-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	Hit()
	Miss()
	Eject()
	Capacity(n int)
	Size(n int)
}

// NoopMetrics is a drop-in Metrics implementation that does nothing.
// It is safe for concurrent use and intended as the default when
// no observability backend is configured.
type NoopMetrics struct{}

func (NoopMetrics) Hit()            {}
func (NoopMetrics) Miss()           {}
func (NoopMetrics) Eject()          {}
func (NoopMetrics) Capacity(n int)  {}
func (NoopMetrics) Size(n int)      {}

// Ensure NoopMetrics implements the Metrics interface at compile time.
var _ Metrics = NoopMetrics{}
