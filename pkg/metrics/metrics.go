// Package metrics holds the prometheus collectors for the gateway: inbound
// HTTP traffic and outbound calls to the salon API.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is the set of collectors registered on the default registry.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	upstreamRequestsTotal   *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec
}

// New registers and returns the collectors. service labels every series.
func New(service string) *Metrics {
	constLabels := prometheus.Labels{"service": service}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests handled, by route, method and status code.",
			ConstLabels: constLabels,
		}, []string{"route", "method", "code"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency, by route and method.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"route", "method"}),

		upstreamRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_requests_total",
			Help:        "Total number of requests sent to the salon API, by host, method and status code.",
			ConstLabels: constLabels,
		}, []string{"host", "method", "code"}),

		upstreamRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "upstream_request_duration_seconds",
			Help:        "Salon API request latency, by host and method.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"host", "method"}),
	}
}

// ObserveHTTPRequest records one handled inbound request.
func (m *Metrics) ObserveHTTPRequest(route, method string, code int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// ObserveUpstreamRequest records one outbound request to the salon API.
// code 0 means the request never produced a response (transport error).
func (m *Metrics) ObserveUpstreamRequest(host, method string, code int, duration time.Duration) {
	m.upstreamRequestsTotal.WithLabelValues(host, method, strconv.Itoa(code)).Inc()
	m.upstreamRequestDuration.WithLabelValues(host, method).Observe(duration.Seconds())
}
