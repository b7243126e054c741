package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	ChartsComputed   *prometheus.CounterVec
	EphemerisLatency prometheus.Histogram
	GeocodeCacheHits prometheus.Counter
	GeocodeCacheMiss prometheus.Counter
	ScanSteps        prometheus.Histogram
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		ChartsComputed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bodygraph_charts_computed_total",
			Help: "Total number of charts computed, by energy type",
		}, []string{"type"}),
		EphemerisLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bodygraph_ephemeris_call_duration_ms",
			Help:    "Latency of ephemeris provider calls in milliseconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100},
		}),
		GeocodeCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bodygraph_geocode_cache_hits_total",
			Help: "Total number of geocode lookups served from cache",
		}),
		GeocodeCacheMiss: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bodygraph_geocode_cache_misses_total",
			Help: "Total number of geocode lookups that fell through to the resolver",
		}),
		ScanSteps: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bodygraph_scan_steps",
			Help:    "Number of steps per scan job",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000},
		}),
	}
}

// ObserveChartComputed counts one computed chart by its energy type.
func (m *Metrics) ObserveChartComputed(energyType string) {
	m.ChartsComputed.WithLabelValues(energyType).Inc()
}

// ObserveEphemerisLatency records one provider round trip.
func (m *Metrics) ObserveEphemerisLatency(d time.Duration) {
	m.EphemerisLatency.Observe(float64(d.Microseconds()) / 1000.0)
}
