// Package promarena exports arena statistics as Prometheus metrics.
package promarena

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pavanmanishd/blockarena"
)

// Snapshotter is anything that can report arena statistics. Collection runs
// on the scraping goroutine, so a plain *blockarena.Arena is only safe here
// if nothing else uses it concurrently; prefer *blockarena.SafeArena.
type Snapshotter interface {
	Metrics() blockarena.ArenaMetrics
}

type collector struct {
	arena Snapshotter

	blocks      *prometheus.Desc
	capacity    *prometheus.Desc
	inUse       *prometheus.Desc
	utilization *prometheus.Desc
}

// NewCollector returns a collector reading from a. constLabels tell apart
// several arenas registered on the same registry.
func NewCollector(a Snapshotter, constLabels prometheus.Labels) prometheus.Collector {
	return &collector{
		arena: a,
		blocks: prometheus.NewDesc(
			"blockarena_blocks",
			"Number of blocks owned by the arena.",
			nil, constLabels),
		capacity: prometheus.NewDesc(
			"blockarena_capacity_bytes",
			"Combined capacity of the arena's blocks.",
			nil, constLabels),
		inUse: prometheus.NewDesc(
			"blockarena_in_use_bytes",
			"Bytes claimed in the arena, alignment padding included.",
			nil, constLabels),
		utilization: prometheus.NewDesc(
			"blockarena_utilization_ratio",
			"Ratio of bytes in use to capacity.",
			nil, constLabels),
	}
}

// Describe implements prometheus.Collector.
func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.blocks
	ch <- c.capacity
	ch <- c.inUse
	ch <- c.utilization
}

// Collect implements prometheus.Collector.
func (c *collector) Collect(ch chan<- prometheus.Metric) {
	m := c.arena.Metrics()
	ch <- prometheus.MustNewConstMetric(c.blocks, prometheus.GaugeValue, float64(m.BlockCount))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(m.TotalCapacity))
	ch <- prometheus.MustNewConstMetric(c.inUse, prometheus.GaugeValue, float64(m.SizeInUse))
	ch <- prometheus.MustNewConstMetric(c.utilization, prometheus.GaugeValue, m.Utilization)
}
