package metrics

import (
	"database/sql"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector bundles the Prometheus metrics exposed on /metrics.
type Collector struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbConnectionsActive prometheus.Gauge
	dbConnectionsIdle   prometheus.Gauge

	cacheHitsTotal   *prometheus.CounterVec
	cacheMissesTotal *prometheus.CounterVec

	counterRecountsTotal *prometheus.CounterVec
}

var (
	globalCollector *Collector
	once            sync.Once
)

// GetGlobalCollector returns the process-wide collector, creating it on
// first use. Metrics register against the default registry.
func GetGlobalCollector() *Collector {
	once.Do(func() {
		globalCollector = newCollector()
	})
	return globalCollector
}

func newCollector() *Collector {
	return &Collector{
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		dbConnectionsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "db_connections_active",
				Help: "Number of active database connections",
			},
		),
		dbConnectionsIdle: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "db_connections_idle",
				Help: "Number of idle database connections",
			},
		),
		cacheHitsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"cache"},
		),
		cacheMissesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"cache"},
		),
		counterRecountsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "post_counter_recounts_total",
				Help: "Total number of post reaction counter recomputations",
			},
			[]string{"status"},
		),
	}
}

// RecordHTTPRequest records one finished request.
func (c *Collector) RecordHTTPRequest(method, endpoint, status string, duration time.Duration) {
	c.httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	c.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordCacheHit records a cache hit for the named cache.
func (c *Collector) RecordCacheHit(cache string) {
	c.cacheHitsTotal.WithLabelValues(cache).Inc()
}

// RecordCacheMiss records a cache miss for the named cache.
func (c *Collector) RecordCacheMiss(cache string) {
	c.cacheMissesTotal.WithLabelValues(cache).Inc()
}

// RecordCounterRecount records a reaction counter recomputation outcome.
func (c *Collector) RecordCounterRecount(status string) {
	c.counterRecountsTotal.WithLabelValues(status).Inc()
}

// UpdateDBStats publishes pool statistics from database/sql.
func (c *Collector) UpdateDBStats(stats sql.DBStats) {
	c.dbConnectionsActive.Set(float64(stats.InUse))
	c.dbConnectionsIdle.Set(float64(stats.Idle))
}
