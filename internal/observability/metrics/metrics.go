package metrics

import "github.com/prometheus/client_golang/prometheus"

// FormMetrics exposes counters for the multi-step form flows.
type FormMetrics struct {
	sessionsStarted *prometheus.CounterVec
	advanceTotal    *prometheus.CounterVec
	submitTotal     *prometheus.CounterVec
}

func NewFormMetrics(reg prometheus.Registerer) *FormMetrics {
	m := &FormMetrics{
		sessionsStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "siteforms",
			Subsystem: "forms",
			Name:      "sessions_started_total",
			Help:      "Total wizard sessions started",
		}, []string{"form"}),
		advanceTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "siteforms",
			Subsystem: "forms",
			Name:      "advance_total",
			Help:      "Total step-advance attempts by outcome",
		}, []string{"form", "outcome"}),
		submitTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "siteforms",
			Subsystem: "forms",
			Name:      "submit_total",
			Help:      "Total final submissions by outcome",
		}, []string{"form", "outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.sessionsStarted, m.advanceTotal, m.submitTotal)
	return m
}

func (m *FormMetrics) ObserveSessionStarted(form string) {
	if m == nil {
		return
	}
	m.sessionsStarted.WithLabelValues(form).Inc()
}

func (m *FormMetrics) ObserveAdvance(form, outcome string) {
	if m == nil {
		return
	}
	m.advanceTotal.WithLabelValues(form, outcome).Inc()
}

func (m *FormMetrics) ObserveSubmit(form, outcome string) {
	if m == nil {
		return
	}
	m.submitTotal.WithLabelValues(form, outcome).Inc()
}
