// Package metrics holds the Prometheus collectors for the web shell.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds Prometheus metrics for page rendering and view-state changes.
type Metrics struct {
	registry *prometheus.Registry

	// PageViews counts rendered pages by route pattern.
	PageViews *prometheus.CounterVec

	// FormSubmissions counts accepted form posts by form name.
	FormSubmissions *prometheus.CounterVec

	// ReminderActions counts reminder toggles and deletions.
	ReminderActions *prometheus.CounterVec

	// SessionsActive is the number of live sessions in the memory store.
	SessionsActive prometheus.Gauge
}

// New creates the collectors and registers them on a fresh registry,
// together with the Go runtime and process collectors.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		PageViews: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "page_views_total",
				Help:      "Total number of rendered pages",
			},
			[]string{"route"},
		),
		FormSubmissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "form_submissions_total",
				Help:      "Total number of accepted form submissions",
			},
			[]string{"form"},
		),
		ReminderActions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reminder_actions_total",
				Help:      "Total number of reminder toggles and deletions",
			},
			[]string{"action"},
		),
		SessionsActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "sessions_active",
				Help:      "Current number of live view-state sessions",
			},
		),
	}

	reg.MustRegister(
		m.PageViews,
		m.FormSubmissions,
		m.ReminderActions,
		m.SessionsActive,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// IncPageView increments the page counter for a route pattern.
func (m *Metrics) IncPageView(route string) {
	if m == nil {
		return
	}
	m.PageViews.WithLabelValues(route).Inc()
}

// IncForm increments the submission counter for a form.
func (m *Metrics) IncForm(form string) {
	if m == nil {
		return
	}
	m.FormSubmissions.WithLabelValues(form).Inc()
}

// IncReminderAction increments the reminder action counter.
func (m *Metrics) IncReminderAction(action string) {
	if m == nil {
		return
	}
	m.ReminderActions.WithLabelValues(action).Inc()
}

// SetSessions sets the live session gauge.
func (m *Metrics) SetSessions(n int) {
	if m == nil {
		return
	}
	m.SessionsActive.Set(float64(n))
}
