package notify

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := NewLogNotifier(zap.New(core), nil)

	if err := n.Notify(context.Background(), "client-1", "escrow_funded", map[string]string{"escrow_id": "esc-1"}); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if err := n.NotifyAdmins(context.Background(), "dispute_escalated", nil); err != nil {
		t.Fatalf("notify admins: %v", err)
	}

	entries := logs.FilterMessage("notification").All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	first := entries[0].ContextMap()
	if first["recipient_id"] != "client-1" || first["audience"] != AudienceUser || first["event_type"] != "escrow_funded" {
		t.Fatalf("unexpected fields: %v", first)
	}
	if entries[1].ContextMap()["audience"] != AudienceAdmins {
		t.Fatalf("admin notification not tagged")
	}
}

func TestNewKafkaNotifier_RequiresBrokers(t *testing.T) {
	if _, err := NewKafkaNotifier(KafkaOptions{Topic: "t"}, nil, nil); err == nil {
		t.Fatalf("expected error without brokers")
	}
}
