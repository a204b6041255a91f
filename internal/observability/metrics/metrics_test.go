package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestFormMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewFormMetrics(reg)
	m.ObserveSessionStarted("signup")
	m.ObserveAdvance("signup", "advanced")
	m.ObserveAdvance("signup", "duplicate-email")
	m.ObserveSubmit("signup", "success")
}

func TestFormMetricsNilSafe(t *testing.T) {
	var m *FormMetrics
	m.ObserveSessionStarted("signup")
	m.ObserveAdvance("booking", "missing-fields")
	m.ObserveSubmit("booking", "success")
}
