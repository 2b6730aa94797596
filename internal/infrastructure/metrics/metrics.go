package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the trust core. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	// Escrow status changes by origin and target status
	EscrowTransitions *prometheus.CounterVec

	// Payment gateway calls by provider, operation and outcome
	GatewayCalls   *prometheus.CounterVec
	GatewayLatency *prometheus.HistogramVec

	// Dispute workflow events by type
	DisputeEvents *prometheus.CounterVec

	// Risk assessments by check type and level
	RiskAssessments *prometheus.CounterVec
	RiskScore       *prometheus.HistogramVec

	// Scheduled job executions by kind and outcome
	JobsHandled *prometheus.CounterVec

	// Notification deliveries by outcome
	Notifications *prometheus.CounterVec
}

// New registers every metric with reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		EscrowTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "trust_escrow_transitions_total",
			Help: "Escrow status transitions by from and to status",
		}, []string{"from", "to"}),

		GatewayCalls: f.NewCounterVec(prometheus.CounterOpts{
			Name: "trust_gateway_calls_total",
			Help: "Payment gateway calls by provider, operation and outcome",
		}, []string{"provider", "operation", "outcome"}),

		GatewayLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "trust_gateway_call_duration_seconds",
			Help:    "Duration of payment gateway calls",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"provider", "operation"}),

		DisputeEvents: f.NewCounterVec(prometheus.CounterOpts{
			Name: "trust_dispute_events_total",
			Help: "Dispute timeline events by type",
		}, []string{"event"}),

		RiskAssessments: f.NewCounterVec(prometheus.CounterOpts{
			Name: "trust_risk_assessments_total",
			Help: "Risk assessments by check type and level",
		}, []string{"check_type", "level"}),

		RiskScore: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "trust_risk_score",
			Help:    "Distribution of risk scores by check type",
			Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		}, []string{"check_type"}),

		JobsHandled: f.NewCounterVec(prometheus.CounterOpts{
			Name: "trust_scheduled_jobs_total",
			Help: "Scheduled jobs handled by kind and outcome",
		}, []string{"kind", "outcome"}),

		Notifications: f.NewCounterVec(prometheus.CounterOpts{
			Name: "trust_notifications_total",
			Help: "Notifications published by outcome",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) IncEscrowTransition(from, to string) {
	if m != nil {
		m.EscrowTransitions.WithLabelValues(from, to).Inc()
	}
}

// ObserveGatewayCall records one gateway call and its duration.
func (m *Metrics) ObserveGatewayCall(provider, operation string, err error, d time.Duration) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.GatewayCalls.WithLabelValues(provider, operation, outcome).Inc()
	m.GatewayLatency.WithLabelValues(provider, operation).Observe(d.Seconds())
}

func (m *Metrics) IncDisputeEvent(event string) {
	if m != nil {
		m.DisputeEvents.WithLabelValues(event).Inc()
	}
}

func (m *Metrics) ObserveRiskAssessment(checkType, level string, score int) {
	if m != nil {
		m.RiskAssessments.WithLabelValues(checkType, level).Inc()
		m.RiskScore.WithLabelValues(checkType).Observe(float64(score))
	}
}

func (m *Metrics) IncJob(kind, outcome string) {
	if m != nil {
		m.JobsHandled.WithLabelValues(kind, outcome).Inc()
	}
}

func (m *Metrics) IncNotification(outcome string) {
	if m != nil {
		m.Notifications.WithLabelValues(outcome).Inc()
	}
}
