package entities

import (
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		score  int
		level  RiskLevel
		action RiskAction
	}{
		{0, RiskLevelLow, RiskActionAllow},
		{29, RiskLevelLow, RiskActionAllow},
		{30, RiskLevelMedium, RiskActionReview},
		{50, RiskLevelHigh, RiskActionFlag},
		{69, RiskLevelHigh, RiskActionFlag},
		{70, RiskLevelCritical, RiskActionBlock},
		{100, RiskLevelCritical, RiskActionBlock},
	}
	for _, tt := range tests {
		level, action := Classify(tt.score)
		if level != tt.level || action != tt.action {
			t.Fatalf("Classify(%d) = %s/%s", tt.score, level, action)
		}
	}
}

func TestNewFraudAssessment_CapsAndFlags(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	a := NewFraudAssessment("u1", FraudCheckReview, []FraudSignal{
		{Code: "a", Weight: 40},
		{Code: "b", Weight: 40},
		{Code: "c", Weight: 40},
	}, now)
	if a.RiskScore != MaxRiskScore {
		t.Fatalf("expected cap, got %d", a.RiskScore)
	}
	if !a.RequiresManualReview || a.Action != RiskActionBlock {
		t.Fatalf("critical must require review and block: %+v", a)
	}

	low := NewFraudAssessment("u1", FraudCheckPayment, nil, now)
	if low.RiskScore != 0 || low.RequiresManualReview || low.Signals == nil {
		t.Fatalf("unexpected empty assessment %+v", low)
	}
}
