package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	serviceName string

	// HTTP метрики (заполняются middleware)
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Метрики исходящих запросов к студийному сервису
	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamRequestDuration *prometheus.HistogramVec

	// Метрики движка подбора
	StaleResponsesDropped *prometheus.CounterVec
	SubmissionsTotal      *prometheus.CounterVec
	ActiveSessions        prometheus.Gauge
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests processed",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		UpstreamRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_requests_total",
			Help:        "Total number of requests to the studio service",
			ConstLabels: constLabels,
		}, []string{"operation", "outcome"}),

		UpstreamRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "upstream_request_duration_seconds",
			Help:        "Studio service request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),

		StaleResponsesDropped: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "stale_responses_dropped_total",
			Help:        "Availability responses dropped because a newer request superseded them",
			ConstLabels: constLabels,
		}, []string{"field"}),

		SubmissionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_submissions_total",
			Help:        "Booking submissions by mode and outcome",
			ConstLabels: constLabels,
		}, []string{"mode", "outcome"}),

		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "active_sessions",
			Help:        "Number of live booking configuration sessions",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTP записывает метрики обработанного HTTP запроса
func (m *Metrics) ObserveHTTP(method, path, status string, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// ObserveUpstream записывает метрики запроса к студийному сервису
func (m *Metrics) ObserveUpstream(operation, outcome string, seconds float64) {
	m.UpstreamRequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.UpstreamRequestDuration.WithLabelValues(operation).Observe(seconds)
}

// IncStaleDropped фиксирует отброшенный устаревший ответ сервиса доступности
func (m *Metrics) IncStaleDropped(field string) {
	m.StaleResponsesDropped.WithLabelValues(field).Inc()
}

// IncSubmission фиксирует попытку отправки бронирования
func (m *Metrics) IncSubmission(mode, outcome string) {
	m.SubmissionsTotal.WithLabelValues(mode, outcome).Inc()
}

// SessionOpened увеличивает счетчик активных сессий
func (m *Metrics) SessionOpened() {
	m.ActiveSessions.Inc()
}

// SessionClosed уменьшает счетчик активных сессий
func (m *Metrics) SessionClosed() {
	m.ActiveSessions.Dec()
}
