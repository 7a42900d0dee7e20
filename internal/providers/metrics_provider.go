package providers

import (
	"fleetd/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncCyclesTotal(outcome string)
	ObserveCycleDuration(duration time.Duration)
	IncZoneQueryErrors()
	SetZoneOccupancy(zone string, count int)
	IncAlertsEmitted(severity string)
}

const (
	CycleOutcomeOK      = "ok"
	CycleOutcomeFailed  = "failed"
	CycleOutcomeSkipped = "skipped"
	CycleOutcomeNoOwner = "no_owner"
)

type MetricsProvider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	cyclesTotal     *prometheus.CounterVec
	cycleDuration   prometheus.Histogram
	zoneQueryErrors prometheus.Counter
	zoneOccupancy   *prometheus.GaugeVec
	alertsEmitted   *prometheus.CounterVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncCyclesTotal(outcome string) {
	m.cyclesTotal.WithLabelValues(outcome).Inc()
}

func (m *MetricsProvider) ObserveCycleDuration(duration time.Duration) {
	m.cycleDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) IncZoneQueryErrors() {
	m.zoneQueryErrors.Inc()
}

func (m *MetricsProvider) SetZoneOccupancy(zone string, count int) {
	m.zoneOccupancy.WithLabelValues(zone).Set(float64(count))
}

func (m *MetricsProvider) IncAlertsEmitted(severity string) {
	m.alertsEmitted.WithLabelValues(severity).Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fleetd_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fleetd_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fleetd_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fleetd_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		cyclesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fleetd_tracker_cycles_total",
			Help: "Total number of zone occupancy tracker cycles by outcome",
		}, []string{"outcome"}),

		cycleDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fleetd_tracker_cycle_duration_seconds",
			Help:    "Duration of completed tracker cycles in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		zoneQueryErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fleetd_zone_query_errors_total",
			Help: "Total number of failed per-zone vessel queries",
		}),

		zoneOccupancy: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fleetd_zone_occupancy",
			Help: "Vessels currently inside each zone",
		}, []string{"zone"}),

		alertsEmitted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fleetd_alerts_emitted_total",
			Help: "Total number of zone alerts emitted",
		}, []string{"severity"}),
	}

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) IncCyclesTotal(_ string)                          {}
func (n *noopMetrics) ObserveCycleDuration(_ time.Duration)             {}
func (n *noopMetrics) IncZoneQueryErrors()                              {}
func (n *noopMetrics) SetZoneOccupancy(_ string, _ int)                 {}
func (n *noopMetrics) IncAlertsEmitted(_ string)                        {}
