package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	NotifyTasksTotal    *prometheus.CounterVec
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		// result: ok | error | dropped
		NotifyTasksTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "notify_tasks_total",
			Help:        "Total number of notification fan-out tasks by result",
			ConstLabels: labels,
		}, []string{"task", "result"}),
	}
}

// ObserveNotifyTask возвращает observer-функцию для диспетчера уведомлений
func (m *Metrics) ObserveNotifyTask() func(task, result string) {
	return func(task, result string) {
		m.NotifyTasksTotal.WithLabelValues(task, result).Inc()
	}
}
