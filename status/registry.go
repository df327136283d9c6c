package status

import "sync/atomic"

// Metric names written by the game loop and the terminal callbacks
const (
	Ticks   = "ticks"
	Eaten   = "eaten"
	Length  = "length"
	Resizes = "resizes"
	Audio   = "audio"
)

// Registry holds run counters shared between the loop goroutine and the input reader
// Writers cache the pointer from Get and store atomically
type Registry struct {
	Ints  *MetricMap[atomic.Int64]
	Bools *MetricMap[atomic.Bool]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:  NewMetricMap[atomic.Int64](),
		Bools: NewMetricMap[atomic.Bool](),
	}
}

// TotalCount returns the number of metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Bools.Count()
}

// Fields flattens all metrics into a map suitable for logrus.WithFields
func (r *Registry) Fields() map[string]any {
	fields := make(map[string]any, r.TotalCount())
	r.Ints.Range(func(name string, v *atomic.Int64) {
		fields[name] = v.Load()
	})
	r.Bools.Range(func(name string, v *atomic.Bool) {
		fields[name] = v.Load()
	})
	return fields
}
