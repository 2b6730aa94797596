package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestEscrowTransitions_NeverGoBackwards(t *testing.T) {
	for _, from := range EscrowStatuses() {
		for _, to := range EscrowStatuses() {
			if !from.CanTransitionTo(to) {
				continue
			}
			if to.Rank() <= from.Rank() {
				t.Fatalf("transition %s -> %s does not move forward", from, to)
			}
		}
	}
}

func TestEscrowTransitions_Table(t *testing.T) {
	allowed := map[EscrowStatus][]EscrowStatus{
		EscrowStatusPending:          {EscrowStatusFunded, EscrowStatusCancelled},
		EscrowStatusFunded:           {EscrowStatusWorkStarted, EscrowStatusDisputed, EscrowStatusRefunded, EscrowStatusReleased, EscrowStatusCancelled},
		EscrowStatusWorkStarted:      {EscrowStatusWorkCompleted, EscrowStatusInspectionPeriod, EscrowStatusDisputed, EscrowStatusRefunded, EscrowStatusReleased},
		EscrowStatusWorkCompleted:    {EscrowStatusInspectionPeriod, EscrowStatusReleased, EscrowStatusDisputed},
		EscrowStatusInspectionPeriod: {EscrowStatusReleased, EscrowStatusDisputed},
		EscrowStatusDisputed:         {EscrowStatusRefunded, EscrowStatusReleased},
	}
	for _, from := range EscrowStatuses() {
		want := map[EscrowStatus]bool{}
		for _, s := range allowed[from] {
			want[s] = true
		}
		for _, to := range EscrowStatuses() {
			if got := from.CanTransitionTo(to); got != want[to] {
				t.Fatalf("%s -> %s: got %v, want %v", from, to, got, want[to])
			}
		}
	}
}

func TestEscrowStatus_Terminal(t *testing.T) {
	terminal := map[EscrowStatus]bool{
		EscrowStatusReleased:  true,
		EscrowStatusRefunded:  true,
		EscrowStatusCancelled: true,
	}
	for _, s := range EscrowStatuses() {
		if s.Terminal() != terminal[s] {
			t.Fatalf("%s terminal = %v", s, s.Terminal())
		}
	}
	if EscrowStatus("archived").Valid() {
		t.Fatalf("unknown status must be invalid")
	}
}

func TestPlatformFeeFor(t *testing.T) {
	tests := []struct {
		amount, rate, want string
	}{
		{"1000", "0.05", "50"},
		{"500", "0.05", "25"},
		{"999.99", "0.05", "50"},
		{"1234.57", "0.05", "61.73"},
	}
	for _, tt := range tests {
		got := PlatformFeeFor(decimal.RequireFromString(tt.amount), decimal.RequireFromString(tt.rate))
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Fatalf("fee(%s, %s) = %s, want %s", tt.amount, tt.rate, got, tt.want)
		}
	}
}

func TestEscrowTransaction_FeeRetained(t *testing.T) {
	e := EscrowTransaction{
		Amount:         decimal.NewFromInt(1000),
		PlatformFee:    decimal.NewFromInt(50),
		Status:         EscrowStatusReleased,
		PayoutAmount:   decimal.NewFromInt(650),
		RefundedAmount: decimal.NewFromInt(300),
	}
	if !e.FeeRetained().Equal(decimal.NewFromInt(50)) {
		t.Fatalf("unexpected retained fee %s", e.FeeRetained())
	}
	if !e.ChargeAmount().Equal(decimal.NewFromInt(1050)) {
		t.Fatalf("unexpected charge %s", e.ChargeAmount())
	}
	e.Status = EscrowStatusFunded
	if !e.FeeRetained().IsZero() {
		t.Fatalf("unsettled escrow retains nothing yet")
	}
}

func TestMilestoneTransitions(t *testing.T) {
	if !MilestoneStatusPending.CanTransitionTo(MilestoneStatusCompleted) {
		t.Fatalf("pending -> completed must be allowed")
	}
	if MilestoneStatusPending.CanTransitionTo(MilestoneStatusReleased) {
		t.Fatalf("pending -> released must go through completed")
	}
	if MilestoneStatusReleased.CanTransitionTo(MilestoneStatusRefunded) {
		t.Fatalf("released milestones are final")
	}
	if !MilestoneStatusRefunded.Terminal() {
		t.Fatalf("refunded is terminal")
	}
}
