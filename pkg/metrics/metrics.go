package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	ToolExecutionsTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		ToolExecutionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "tool_executions_total",
			Help:        "Total number of appointment tool executions by outcome",
			ConstLabels: constLabels,
		}, []string{"tool", "outcome"}),
	}
}

// ObserveToolExecution инкрементирует счетчик выполнений инструмента
func (m *Metrics) ObserveToolExecution(tool, outcome string) {
	if m == nil {
		return
	}
	m.ToolExecutionsTotal.WithLabelValues(tool, outcome).Inc()
}
