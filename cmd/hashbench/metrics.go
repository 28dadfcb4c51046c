package main

import (
	"github.com/prometheus/client_golang/prometheus"
)

// benchMetrics exports the workload's Prometheus series. Safe for concurrent
// use; all Prometheus metric types are goroutine-safe.
type benchMetrics struct {
	hashes  prometheus.Counter
	bytes   prometheus.Counter
	indexes prometheus.Histogram
	rate    prometheus.Gauge
}

// newBenchMetrics constructs and registers the workload metrics.
//   - reg:   registry to register with (nil => prometheus.DefaultRegisterer)
//   - table: probe-table size; the index histogram spans [0, table) so a
//     scrape shows whether SeedMix spreads the keyspace evenly
//   - constLabels: static labels applied to all metrics (may be nil)
func newBenchMetrics(reg prometheus.Registerer, table uint64, constLabels prometheus.Labels) *benchMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	const ns, sub = "stablehash", "bench"
	m := &benchMetrics{
		hashes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "hashes_total",
			Help:        "Keys hashed",
			ConstLabels: constLabels,
		}),
		bytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "bytes_total",
			Help:        "Key bytes hashed",
			ConstLabels: constLabels,
		}),
		indexes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "probe_index",
			Help:        "SeedMix probe indexes; uniform occupancy means healthy mixing",
			Buckets:     prometheus.LinearBuckets(0, float64(table)/16, 16),
			ConstLabels: constLabels,
		}),
		rate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "ops_per_second",
			Help:        "Most recent throughput report",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(m.hashes, m.bytes, m.indexes, m.rate)
	return m
}

// observe records one hashed key and the probe index it landed on.
func (m *benchMetrics) observe(keyBytes int, index uint64) {
	m.hashes.Inc()
	m.bytes.Add(float64(keyBytes))
	m.indexes.Observe(float64(index))
}

// setRate publishes the aggregate throughput.
func (m *benchMetrics) setRate(opsPerSec float64) { m.rate.Set(opsPerSec) }
