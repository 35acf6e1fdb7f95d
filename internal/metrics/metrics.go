package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the service.
type Metrics struct {
	ChecksTotal  *prometheus.CounterVec
	CacheHits    prometheus.Counter
	ChecksStored prometheus.Gauge
}

// New creates and registers all collectors on the default registry.
func New() *Metrics {
	return &Metrics{
		ChecksTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "upc_checks_total",
			Help: "Total number of code checks, by verdict",
		}, []string{"valid"}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "upc_cache_hits_total",
			Help: "Number of checks answered from the verdict cache",
		}),
		ChecksStored: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "upc_checks_stored",
			Help: "Number of check records currently in storage",
		}),
	}
}

func (m *Metrics) ObserveCacheHit() {
	if m == nil {
		return
	}
	m.CacheHits.Inc()
}

func (m *Metrics) ObserveCheck(valid bool) {
	if m == nil {
		return
	}
	if valid {
		m.ChecksTotal.WithLabelValues("true").Inc()
		return
	}
	m.ChecksTotal.WithLabelValues("false").Inc()
}
