// Package metrics collects and exposes Prometheus metrics for the REST API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records per-request counters and latencies. Handlers report
// through it rather than touching prometheus directly.
type Collector struct {
	requests *prometheus.CounterVec
	latency  prometheus.Histogram
	signups  prometheus.Counter
	logins   prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "todolist_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status_code"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "todolist_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		signups: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "todolist_signups_total",
			Help: "Accounts created",
		}),
		logins: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "todolist_logins_total",
			Help: "Successful logins",
		}),
	}

	reg.MustRegister(
		c.requests,
		c.latency,
		c.signups,
		c.logins,
	)

	return c
}

// RecordRequest records one completed HTTP request.
func (c *Collector) RecordRequest(method, route string, statusCode int, duration time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.latency.Observe(duration.Seconds())
}

// RecordSignup records a created account.
func (c *Collector) RecordSignup() {
	c.signups.Inc()
}

// RecordLogin records a successful login.
func (c *Collector) RecordLogin() {
	c.logins.Inc()
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
