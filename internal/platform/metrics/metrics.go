package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	SignupsTotal      prometheus.Counter
	LoginsTotal       *prometheus.CounterVec
	ApplicationsTotal prometheus.Counter
	RequestDuration   *prometheus.HistogramVec
}

// New creates and registers all metrics on the given registerer. Pass a
// fresh prometheus.NewRegistry() in tests to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SignupsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "enrolld_signups_total",
			Help: "Total number of accounts created.",
		}),
		LoginsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "enrolld_logins_total",
			Help: "Total number of login attempts by result.",
		}, []string{"result"}),
		ApplicationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "enrolld_applications_submitted_total",
			Help: "Total number of applications recorded in the ledger.",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "enrolld_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}

// IncrementSignups records one successful signup.
func (m *Metrics) IncrementSignups() {
	if m != nil {
		m.SignupsTotal.Inc()
	}
}

// IncrementLogins records one login attempt with result "ok" or "denied".
func (m *Metrics) IncrementLogins(result string) {
	if m != nil {
		m.LoginsTotal.WithLabelValues(result).Inc()
	}
}

// IncrementApplications records one submitted application.
func (m *Metrics) IncrementApplications() {
	if m != nil {
		m.ApplicationsTotal.Inc()
	}
}

// ObserveRequest records one HTTP request's latency.
func (m *Metrics) ObserveRequest(route, status string, d time.Duration) {
	if m != nil {
		m.RequestDuration.WithLabelValues(route, status).Observe(d.Seconds())
	}
}
