// Package metrics exposes Prometheus instrumentation for the API server
// and the upstream data source clients.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects all instrumentation for the service under the
// "macropilot" namespace. Construct one per process with New and share it;
// all methods are safe for concurrent use.
type Metrics struct {
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	sourceFetches  *prometheus.CounterVec
	sourceDuration *prometheus.HistogramVec
	cacheEvents    *prometheus.CounterVec
	chatTurns      *prometheus.CounterVec
	tokensOut      prometheus.Counter
	registry       *prometheus.Registry
}

// New creates and registers all service metrics on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &Metrics{registry: registry}

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "macropilot",
		Name:      "http_requests_total",
		Help:      "Count of HTTP requests by route and status code",
	}, []string{"route", "status"})

	m.httpDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "macropilot",
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   []float64{1, 5, 10, 50, 100, 500, 1000, 5000, 10000},
	}, []string{"route"})

	m.sourceFetches = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "macropilot",
		Name:      "source_fetches_total",
		Help:      "Count of upstream data source fetches by source and outcome",
	}, []string{"source", "outcome"}) // outcome: success, error, skipped

	m.sourceDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "macropilot",
		Name:      "source_fetch_duration_ms",
		Help:      "Upstream data source fetch duration in milliseconds",
		Buckets:   []float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000},
	}, []string{"source"})

	m.cacheEvents = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "macropilot",
		Name:      "cache_events_total",
		Help:      "Triangulation cache hits and misses",
	}, []string{"event"}) // event: hit, miss

	m.chatTurns = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "macropilot",
		Name:      "chat_turns_total",
		Help:      "Count of chat turns by detected intent",
	}, []string{"intent"})

	m.tokensOut = factory.NewCounter(prometheus.CounterOpts{
		Namespace: "macropilot",
		Name:      "chat_tokens_generated_total",
		Help:      "Cumulative count of tokens generated by the model",
	})

	return m
}

// Registry returns the registry backing this metrics set, for mounting a
// promhttp handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTPRequest records one served HTTP request.
func (m *Metrics) ObserveHTTPRequest(route, status string, duration time.Duration) {
	m.httpRequests.WithLabelValues(route, status).Inc()
	m.httpDuration.WithLabelValues(route).Observe(float64(duration.Milliseconds()))
}

// ObserveSourceFetch records one upstream source call.
func (m *Metrics) ObserveSourceFetch(source, outcome string, duration time.Duration) {
	m.sourceFetches.WithLabelValues(source, outcome).Inc()
	m.sourceDuration.WithLabelValues(source).Observe(float64(duration.Milliseconds()))
}

// CacheHit records a triangulation cache hit.
func (m *Metrics) CacheHit() {
	m.cacheEvents.WithLabelValues("hit").Inc()
}

// CacheMiss records a triangulation cache miss.
func (m *Metrics) CacheMiss() {
	m.cacheEvents.WithLabelValues("miss").Inc()
}

// ObserveChatTurn records a chat turn and the tokens it generated.
func (m *Metrics) ObserveChatTurn(intent string, tokens int) {
	m.chatTurns.WithLabelValues(intent).Inc()
	if tokens > 0 {
		m.tokensOut.Add(float64(tokens))
	}
}
