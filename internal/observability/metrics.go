// Package observability exposes Prometheus metrics for roster changes.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for signup and unregister attempts.
const (
	OutcomeOK            = "ok"
	OutcomeNotFound      = "not_found"
	OutcomeDuplicate     = "duplicate"
	OutcomeFull          = "full"
	OutcomeNotRegistered = "not_registered"
	OutcomeInvalid       = "invalid"
	OutcomeError         = "error"
)

// Metrics groups the collectors recorded by the activity service.
type Metrics struct {
	signups         *prometheus.CounterVec
	unregistrations *prometheus.CounterVec
	participants    *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		signups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "activity_signup",
			Subsystem: "roster",
			Name:      "signups_total",
			Help:      "Signup attempts partitioned by activity and outcome.",
		}, []string{"activity", "outcome"}),
		unregistrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "activity_signup",
			Subsystem: "roster",
			Name:      "unregistrations_total",
			Help:      "Unregister attempts partitioned by activity and outcome.",
		}, []string{"activity", "outcome"}),
		participants: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "activity_signup",
			Subsystem: "roster",
			Name:      "participants",
			Help:      "Current number of participants signed up for each activity.",
		}, []string{"activity"}),
	}
	reg.MustRegister(m.signups, m.unregistrations, m.participants)
	return m
}

// RecordSignup counts a signup attempt.
func (m *Metrics) RecordSignup(activity, outcome string) {
	m.signups.WithLabelValues(activity, outcome).Inc()
}

// RecordUnregister counts an unregister attempt.
func (m *Metrics) RecordUnregister(activity, outcome string) {
	m.unregistrations.WithLabelValues(activity, outcome).Inc()
}

// SetParticipants updates the roster size gauge.
func (m *Metrics) SetParticipants(activity string, count int) {
	m.participants.WithLabelValues(activity).Set(float64(count))
}

// AddParticipants adjusts the roster size gauge by delta.
func (m *Metrics) AddParticipants(activity string, delta int) {
	m.participants.WithLabelValues(activity).Add(float64(delta))
}
