package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Chat metrics
	chatRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatbot_chat_requests_total",
		Help: "Total number of chat requests",
	}, []string{"channel", "status"})

	repliesBySource = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatbot_replies_total",
		Help: "Total number of replies by resolving strategy",
	}, []string{"source"})

	resolveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "chatbot_resolve_duration_seconds",
		Help:    "Duration of reply resolution",
		Buckets: prometheus.DefBuckets,
	})

	// Command metrics
	commandsExecuted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatbot_commands_executed_total",
		Help: "Total number of Telegram commands executed",
	}, []string{"command"})

	// Model metrics
	modelRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chatbot_model_request_duration_seconds",
		Help:    "Duration of model requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"model", "status"})

	modelRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatbot_model_requests_total",
		Help: "Total number of model requests",
	}, []string{"model", "status"})

	// Cache metrics
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chatbot_cache_hits_total",
		Help: "Total number of cache hits",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chatbot_cache_misses_total",
		Help: "Total number of cache misses",
	})

	// HTTP metrics
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chatbot_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method", "code"})
)

// Metrics provides methods to record metrics. A nil *Metrics is valid and
// records to the same process-wide collectors.
type Metrics struct{}

// NewMetrics creates a new metrics instance
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordChatRequest records a chat request on a channel ("api", "telegram", "cli")
func (m *Metrics) RecordChatRequest(channel, status string) {
	chatRequests.WithLabelValues(channel, status).Inc()
}

// RecordReply records which strategy produced a reply
func (m *Metrics) RecordReply(source string, duration time.Duration) {
	repliesBySource.WithLabelValues(source).Inc()
	resolveDuration.Observe(duration.Seconds())
}

// RecordCommandExecuted records an executed command
func (m *Metrics) RecordCommandExecuted(command string) {
	commandsExecuted.WithLabelValues(command).Inc()
}

// RecordModelRequest records a model request
func (m *Metrics) RecordModelRequest(model, status string, duration time.Duration) {
	modelRequestDuration.WithLabelValues(model, status).Observe(duration.Seconds())
	modelRequestsTotal.WithLabelValues(model, status).Inc()
}

// RecordCacheHit records a cache hit
func (m *Metrics) RecordCacheHit() {
	cacheHits.Inc()
}

// RecordCacheMiss records a cache miss
func (m *Metrics) RecordCacheMiss() {
	cacheMisses.Inc()
}

// RecordHTTPRequest records a served HTTP request
func (m *Metrics) RecordHTTPRequest(route, method string, code int, duration time.Duration) {
	httpRequestDuration.WithLabelValues(route, method, strconv.Itoa(code)).Observe(duration.Seconds())
}

// Handler exposes the collected metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}
