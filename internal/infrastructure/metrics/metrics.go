// Package metrics holds the Prometheus collectors of the loan service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
	Applications     *prometheus.CounterVec
	StatusTransition *prometheus.CounterVec
}

// New registers every collector on reg. Pass prometheus.DefaultRegisterer in main
// and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "code"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Applications: f.NewCounterVec(prometheus.CounterOpts{
			Name: "loan_applications_total",
			Help: "Loan applications accepted, by resulting status",
		}, []string{"status"}),
		StatusTransition: f.NewCounterVec(prometheus.CounterOpts{
			Name: "loan_status_transitions_total",
			Help: "Committed loan status changes",
		}, []string{"from", "to"}),
	}
}

func (m *Metrics) RecordHTTPRequest(method, route string, code int, d time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) ApplicationDecided(status string) {
	m.Applications.WithLabelValues(status).Inc()
}

func (m *Metrics) TransitionApplied(from, to string) {
	m.StatusTransition.WithLabelValues(from, to).Inc()
}
