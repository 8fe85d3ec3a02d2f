package monitoring

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	ExtractionsTotal    *prometheus.CounterVec
	FetchDuration       *prometheus.HistogramVec
}

// NewMetrics registers the metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		ExtractionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "extractions_total",
			Help: "The total number of extraction requests by outcome",
		}, []string{"portal", "outcome"}), // e.g. 'success', 'fetch_failed', 'price_not_found'
		FetchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fetch_duration_seconds",
			Help:    "Duration of listing page fetches",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30},
		}, []string{"portal"}),
	}
}

// ObserveRequest records one served HTTP request. path should be the route
// pattern, not the raw URL, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, path string, status int, seconds float64) {
	code := strconv.Itoa(status)
	m.HTTPRequestsTotal.WithLabelValues(method, path, code).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, code).Observe(seconds)
}

func (m *Metrics) IncExtraction(portal, outcome string) {
	m.ExtractionsTotal.WithLabelValues(portal, outcome).Inc()
}

func (m *Metrics) ObserveFetch(portal string, seconds float64) {
	m.FetchDuration.WithLabelValues(portal).Observe(seconds)
}
