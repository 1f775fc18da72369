// Package monitoring exposes Prometheus metrics for the HTTP server and the
// campaign workflow.
package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics of the service.
type Metrics struct {
	// HTTP
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Accounts
	Registrations *prometheus.CounterVec
	Logins        *prometheus.CounterVec

	// Campaigns
	CampaignsCreated prometheus.Counter
	CampaignsUpdated prometheus.Counter
	CampaignsDeleted prometheus.Counter
	MetricEntries    prometheus.Counter
	RecordedSpend    prometheus.Counter

	gatherer prometheus.Gatherer
}

// NewMetrics creates all metrics under namespace and registers them on reg.
// A nil reg uses a fresh registry that also carries the Go runtime and
// process collectors.
func NewMetrics(namespace string, reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	f := promauto.With(reg)

	return &Metrics{
		Requests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by route pattern and status code",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"method", "route"},
		),
		Registrations: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "registrations_total",
				Help:      "Registration attempts by result",
			},
			[]string{"result"},
		),
		Logins: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "logins_total",
				Help:      "Login attempts by result",
			},
			[]string{"result"},
		),
		CampaignsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "campaigns_created_total",
			Help:      "Campaigns created",
		}),
		CampaignsUpdated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "campaigns_updated_total",
			Help:      "Campaigns updated",
		}),
		CampaignsDeleted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "campaigns_deleted_total",
			Help:      "Campaigns deleted",
		}),
		MetricEntries: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "metric_entries_total",
			Help:      "Metric entries recorded",
		}),
		RecordedSpend: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recorded_spend_total",
			Help:      "Sum of spend recorded through metric entries",
		}),
		gatherer: reg,
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
