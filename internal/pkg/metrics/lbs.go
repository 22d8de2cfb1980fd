package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// LBSMetrics считает вызовы сервиса геолокации. Реализует lbs.Observer.
type LBSMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	cache    *prometheus.CounterVec
}

// NewLBSMetrics регистрирует метрики на reg. При nil reg метрики не пишутся.
func NewLBSMetrics(reg prometheus.Registerer) *LBSMetrics {
	if reg == nil {
		return &LBSMetrics{}
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lbs_requests_total",
		Help: "Calls to the location service by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lbs_request_duration_seconds",
		Help:    "Round-trip time of location service calls.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
	cache := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lbs_cache_lookups_total",
		Help: "Gateway cache lookups by result.",
	}, []string{"endpoint", "result"})
	reg.MustRegister(requests, duration, cache)
	return &LBSMetrics{
		requests: requests,
		duration: duration,
		cache:    cache,
	}
}

// ObserveCall записывает исход и длительность вызова.
func (m *LBSMetrics) ObserveCall(endpoint, outcome string, d time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	endpoint = normalizeLabel(endpoint)
	m.requests.WithLabelValues(endpoint, outcome).Inc()
	if d > 0 {
		m.duration.WithLabelValues(endpoint).Observe(d.Seconds())
	}
}

// CacheHit / CacheMiss - результат поиска в кеше шлюза
func (m *LBSMetrics) CacheHit(endpoint string) {
	m.cacheLookup(endpoint, "hit")
}

func (m *LBSMetrics) CacheMiss(endpoint string) {
	m.cacheLookup(endpoint, "miss")
}

func (m *LBSMetrics) cacheLookup(endpoint, result string) {
	if m == nil || m.cache == nil {
		return
	}
	m.cache.WithLabelValues(normalizeLabel(endpoint), result).Inc()
}

func normalizeLabel(endpoint string) string {
	if endpoint == "" {
		return "unknown"
	}
	return endpoint
}
