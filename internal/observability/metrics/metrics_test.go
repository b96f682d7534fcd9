package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestBookingMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookingMetrics(reg)
	m.ObserveSubmission("accepted")
	m.ObserveValidationFailure("email")
	m.ObserveSubmitLatency(0.05)
}

func TestBookingMetricsNilSafe(t *testing.T) {
	var m *BookingMetrics
	m.ObserveSubmission("accepted")
	m.ObserveValidationFailure("email")
	m.ObserveSubmitLatency(0.1)
}
