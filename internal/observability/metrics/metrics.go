package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters/histograms for the booking wizard flow.
type BookingMetrics struct {
	submissionTotal   *prometheus.CounterVec
	validationFailure *prometheus.CounterVec
	submitLatency     prometheus.Histogram
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		submissionTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rendezvous",
			Subsystem: "wizard",
			Name:      "submission_total",
			Help:      "Total booking submissions by outcome",
		}, []string{"status"}),
		validationFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rendezvous",
			Subsystem: "wizard",
			Name:      "validation_failure_total",
			Help:      "Total failed submit validations by field",
		}, []string{"field"}),
		submitLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "rendezvous",
			Subsystem: "wizard",
			Name:      "submit_latency_seconds",
			Help:      "Latency of accepted submissions, sink included",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionTotal, m.validationFailure, m.submitLatency)

	return m
}

func (m *BookingMetrics) ObserveSubmission(status string) {
	if m == nil {
		return
	}
	m.submissionTotal.WithLabelValues(status).Inc()
}

func (m *BookingMetrics) ObserveValidationFailure(field string) {
	if m == nil {
		return
	}
	m.validationFailure.WithLabelValues(field).Inc()
}

func (m *BookingMetrics) ObserveSubmitLatency(seconds float64) {
	if m == nil {
		return
	}
	m.submitLatency.Observe(seconds)
}
