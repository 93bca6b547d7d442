// Package clientmetrics instruments an http.Client transport with the
// upstream-request collectors, so every call to the salon API is measured
// without the integration client knowing about prometheus.
package clientmetrics

import (
	"net/http"
	"time"

	"github.com/hyeonbit/Salon-BookingGateway/pkg/metrics"
)

type roundTripper struct {
	base    http.RoundTripper
	metrics *metrics.Metrics
}

// WrapTransport returns a RoundTripper that records request counts and
// latency for every request passing through base. A nil base uses
// http.DefaultTransport.
func WrapTransport(base http.RoundTripper, m *metrics.Metrics) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &roundTripper{base: base, metrics: m}
}

func (rt *roundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := rt.base.RoundTrip(req)

	code := 0
	if resp != nil {
		code = resp.StatusCode
	}
	rt.metrics.ObserveUpstreamRequest(req.URL.Host, req.Method, code, time.Since(start))

	return resp, err
}
