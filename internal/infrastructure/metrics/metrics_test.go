package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncEscrowTransition("funded", "released")
		m.ObserveGatewayCall("stripe", "capture", nil, time.Millisecond)
		m.IncDisputeEvent("opened")
		m.ObserveRiskAssessment("review", "low", 10)
		m.IncJob("escrow.auto_release", "ok")
		m.IncNotification("ok")
	})
}

func TestMetrics_Counts(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncEscrowTransition("inspection_period", "released")
	m.IncEscrowTransition("inspection_period", "released")
	m.ObserveGatewayCall("stripe", "transfer", errors.New("declined"), time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.EscrowTransitions.WithLabelValues("inspection_period", "released")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GatewayCalls.WithLabelValues("stripe", "transfer", "error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.GatewayCalls.WithLabelValues("stripe", "transfer", "ok")))
}
