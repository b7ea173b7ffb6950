package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	PoliciesCreated  prometheus.Counter
	PoliciesUpdated  prometheus.Counter
	PoliciesRejected *prometheus.CounterVec
	ClaimsCreated    prometheus.Counter

	ExpiryScanRuns        *prometheus.CounterVec
	ExpiryLogsCreated     prometheus.Counter
	ExpiryScanDuration    prometheus.Histogram
	ExpiryScanLastSuccess prometheus.Gauge
}

// Scan outcomes recorded in ExpiryScanRuns.
const (
	ScanOutcomeSkipped = "skipped"
	ScanOutcomeSuccess = "success"
	ScanOutcomeFailed  = "failed"
)

// New creates and registers all Prometheus metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "carsapi_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "carsapi_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		PoliciesCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "carsapi_policies_created_total",
			Help: "Total number of insurance policies created",
		}),
		PoliciesUpdated: f.NewCounter(prometheus.CounterOpts{
			Name: "carsapi_policies_updated_total",
			Help: "Total number of insurance policies updated",
		}),
		PoliciesRejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "carsapi_policies_rejected_total",
			Help: "Total number of policy writes rejected, by reason",
		}, []string{"reason"}),
		ClaimsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "carsapi_claims_created_total",
			Help: "Total number of claims filed",
		}),
		ExpiryScanRuns: f.NewCounterVec(prometheus.CounterOpts{
			Name: "carsapi_expiry_scan_runs_total",
			Help: "Total number of expiry scanner invocations by outcome",
		}, []string{"outcome"}),
		ExpiryLogsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "carsapi_expiry_logs_created_total",
			Help: "Total number of policy expiry log entries written",
		}),
		ExpiryScanDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "carsapi_expiry_scan_duration_seconds",
			Help:    "Duration of expiry scans that passed the hour gate",
			Buckets: prometheus.DefBuckets,
		}),
		ExpiryScanLastSuccess: f.NewGauge(prometheus.GaugeOpts{
			Name: "carsapi_expiry_scan_last_success_timestamp_seconds",
			Help: "Unix time of the last successful expiry scan",
		}),
	}
}

// NewNop returns metrics registered on a private registry, for tests and tools
// that do not expose /metrics.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

// IncrementPoliciesCreated increments the policies created counter by 1
func (m *Metrics) IncrementPoliciesCreated() {
	m.PoliciesCreated.Inc()
}

// IncrementPoliciesUpdated increments the policies updated counter by 1
func (m *Metrics) IncrementPoliciesUpdated() {
	m.PoliciesUpdated.Inc()
}

// IncrementPoliciesRejected counts a rejected policy write.
func (m *Metrics) IncrementPoliciesRejected(reason string) {
	m.PoliciesRejected.WithLabelValues(reason).Inc()
}

// IncrementClaimsCreated increments the claims created counter by 1
func (m *Metrics) IncrementClaimsCreated() {
	m.ClaimsCreated.Inc()
}

// AddExpiryLogsCreated adds n written expiry log entries.
func (m *Metrics) AddExpiryLogsCreated(n int) {
	m.ExpiryLogsCreated.Add(float64(n))
}

// ObserveExpiryScan records one scanner invocation.
func (m *Metrics) ObserveExpiryScan(outcome string, seconds float64, finishedAt float64) {
	m.ExpiryScanRuns.WithLabelValues(outcome).Inc()
	if outcome == ScanOutcomeSkipped {
		return
	}
	m.ExpiryScanDuration.Observe(seconds)
	if outcome == ScanOutcomeSuccess {
		m.ExpiryScanLastSuccess.Set(finishedAt)
	}
}
