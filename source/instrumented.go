package source

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	allocations prometheus.Counter
	releases    prometheus.Counter
	failures    prometheus.Counter
	bytesInUse  prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		allocations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blockarena_source_allocations_total",
			Help: "Total number of block buffers handed out by the memory source.",
		}),
		releases: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blockarena_source_releases_total",
			Help: "Total number of block buffers returned to the memory source.",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blockarena_source_failures_total",
			Help: "Total number of block requests the memory source could not satisfy.",
		}),
		bytesInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "blockarena_source_bytes_in_use",
			Help: "Bytes currently handed out by the memory source.",
		}),
	}
	if reg != nil {
		reg.MustRegister(
			m.allocations,
			m.releases,
			m.failures,
			m.bytesInUse,
		)
	}
	return m
}

// Instrumented exports Prometheus metrics about the wrapped Source.
type Instrumented struct {
	next    Source
	metrics *metrics
}

// NewInstrumented wraps next and registers its metrics on reg. A nil reg
// keeps the metrics unregistered.
func NewInstrumented(next Source, reg prometheus.Registerer) *Instrumented {
	if next == nil {
		next = Heap{}
	}
	return &Instrumented{next: next, metrics: newMetrics(reg)}
}

// Allocate satisfies the Source interface.
func (s *Instrumented) Allocate(size int) ([]byte, error) {
	b, err := s.next.Allocate(size)
	if err != nil {
		s.metrics.failures.Inc()
		return nil, err
	}
	s.metrics.allocations.Inc()
	s.metrics.bytesInUse.Add(float64(len(b)))
	return b, nil
}

// Release satisfies the Source interface.
func (s *Instrumented) Release(b []byte) {
	s.metrics.releases.Inc()
	s.metrics.bytesInUse.Sub(float64(len(b)))
	s.next.Release(b)
}
