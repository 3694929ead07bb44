package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the collectors of the service. A nil *Metrics is valid and
// records nothing, so components can be used without instrumentation.
type Metrics struct {
	// HTTP request metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Pipeline metrics
	ViewModelBuilds  prometheus.Counter
	BuildFailures    prometheus.Counter
	CacheLookups     *prometheus.CounterVec
	FilterResultSize prometheus.Histogram
	NoMatchesTotal   prometheus.Counter
}

// New registers the collectors on reg, every name prefixed with prefix.
func New(prefix string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		ViewModelBuilds: factory.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_view_model_builds_total",
				Help: "Total number of enriched product list builds",
			},
		),
		BuildFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_view_model_build_failures_total",
				Help: "Total number of builds aborted by unresolved references",
			},
		),
		CacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_cache_lookups_total",
				Help: "Total number of view-model cache lookups by result",
			},
			[]string{"result"},
		),
		FilterResultSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    prefix + "_filter_result_size",
				Help:    "Number of products left after filtering",
				Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
			},
		),
		NoMatchesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_no_matches_total",
				Help: "Total number of filter requests with an empty result",
			},
		),
	}
}

// ObserveHTTPRequest records one served request.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, startTime time.Time) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(startTime).Seconds())
}

// RecordBuild counts a view-model build and whether it failed.
func (m *Metrics) RecordBuild(err error) {
	if m == nil {
		return
	}
	m.ViewModelBuilds.Inc()
	if err != nil {
		m.BuildFailures.Inc()
	}
}

// RecordCacheLookup counts a cache lookup; result is hit, miss or error.
func (m *Metrics) RecordCacheLookup(result string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}

// RecordFilterResult observes the size of a filtered product list.
func (m *Metrics) RecordFilterResult(size int) {
	if m == nil {
		return
	}
	m.FilterResultSize.Observe(float64(size))
	if size == 0 {
		m.NoMatchesTotal.Inc()
	}
}
