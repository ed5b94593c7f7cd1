package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// MetricsManager holds the admin service's Prometheus metrics. A nil manager
// is valid and records nothing.
type MetricsManager struct {
	Registry          *prometheus.Registry
	APILatency        *prometheus.HistogramVec
	APIErrorsTotal    *prometheus.CounterVec
	AdminActionsTotal *prometheus.CounterVec
	FilterResultSize  *prometheus.HistogramVec
	QueryCacheTotal   *prometheus.CounterVec
}

// NewMetricsManager builds the metrics on a dedicated registry.
func NewMetricsManager(serviceName string) *MetricsManager {
	registry := prometheus.NewRegistry()

	apiLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: serviceName,
		Name:      "api_request_latency_seconds",
		Help:      "Latency of HTTP requests by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	apiErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "api_errors_total",
		Help:      "Total number of HTTP responses with a 4xx or 5xx status.",
	}, []string{"route", "status"})

	actions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "admin_actions_total",
		Help:      "Simulated admin actions by action and outcome.",
	}, []string{"action", "outcome"})

	filterSize := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: serviceName,
		Name:      "filter_result_size",
		Help:      "Number of records returned by a list filter.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"entity"})

	cacheTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "query_cache_total",
		Help:      "Query cache lookups by result.",
	}, []string{"result"})

	registry.MustRegister(
		apiLatency,
		apiErrors,
		actions,
		filterSize,
		cacheTotal,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	return &MetricsManager{
		Registry:          registry,
		APILatency:        apiLatency,
		APIErrorsTotal:    apiErrors,
		AdminActionsTotal: actions,
		FilterResultSize:  filterSize,
		QueryCacheTotal:   cacheTotal,
	}
}

// ObserveRequest records the latency of one HTTP request and counts it as an
// error when status is 4xx or 5xx.
func (m *MetricsManager) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.APILatency.WithLabelValues(route, method).Observe(elapsed.Seconds())
	if status >= http.StatusBadRequest {
		m.APIErrorsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	}
}

func (m *MetricsManager) ObserveAction(action string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.AdminActionsTotal.WithLabelValues(action, outcome).Inc()
}

func (m *MetricsManager) ObserveFilter(entity string, n int) {
	if m == nil {
		return
	}
	m.FilterResultSize.WithLabelValues(entity).Observe(float64(n))
}

func (m *MetricsManager) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.QueryCacheTotal.WithLabelValues(result).Inc()
}

// NewMetricsServer returns the HTTP server exposing /metrics, or nil when no
// port is configured.
func NewMetricsServer(port string, appLogger *logger.Logger, registry *prometheus.Registry) *http.Server {
	if port == "" {
		appLogger.Info("Prometheus metrics server port not configured, server will not start.")
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	appLogger.Info("Prometheus metrics server configured", zap.String("port", port), zap.String("path", "/metrics"))
	return &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}
}
