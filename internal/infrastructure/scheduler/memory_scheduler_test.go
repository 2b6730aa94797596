package scheduler

import (
	"context"
	"testing"
	"time"

	"marketplace_trust/internal/domain/entities"
)

var t0 = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func job(ref string) entities.ScheduledJob {
	return entities.ScheduledJob{Kind: entities.JobEscrowAutoRelease, RefID: ref}
}

func TestMemoryScheduler_ClaimsDueJobsInOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryScheduler(time.Minute)

	_ = s.ScheduleAt(ctx, t0.Add(2*time.Second), job("esc-2"))
	_ = s.ScheduleAt(ctx, t0.Add(time.Second), job("esc-1"))
	_ = s.ScheduleAt(ctx, t0.Add(time.Hour), job("esc-later"))

	leases, err := s.Claim(ctx, t0.Add(5*time.Second), 10)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if len(leases) != 2 || leases[0].Job.RefID != "esc-1" || leases[1].Job.RefID != "esc-2" {
		t.Fatalf("unexpected leases: %+v", leases)
	}

	again, _ := s.Claim(ctx, t0.Add(5*time.Second), 10)
	if len(again) != 0 {
		t.Fatalf("leased jobs must not be claimed twice: %+v", again)
	}

	expired, _ := s.Claim(ctx, t0.Add(5*time.Second+time.Minute), 10)
	if len(expired) != 2 {
		t.Fatalf("jobs should reappear after the lease, got %d", len(expired))
	}
}

func TestMemoryScheduler_ScheduleSameKeyKeepsOneEntry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryScheduler(time.Minute)

	_ = s.ScheduleAt(ctx, t0, job("esc-1"))
	_ = s.ScheduleAt(ctx, t0.Add(time.Hour), job("esc-1"))

	if n, _ := s.Pending(ctx); n != 1 {
		t.Fatalf("expected 1 pending job, got %d", n)
	}
	if leases, _ := s.Claim(ctx, t0.Add(time.Minute), 10); len(leases) != 0 {
		t.Fatalf("rescheduled job should not be due yet")
	}
}

func TestMemoryScheduler_AckHonoursLease(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryScheduler(time.Minute)
	_ = s.ScheduleAt(ctx, t0, job("esc-1"))

	leases, _ := s.Claim(ctx, t0, 1)
	if len(leases) != 1 {
		t.Fatalf("expected one lease")
	}

	// rescheduled while the handler was running
	_ = s.ScheduleAt(ctx, t0.Add(time.Hour), job("esc-1"))
	_ = s.Ack(ctx, leases[0])
	if n, _ := s.Pending(ctx); n != 1 {
		t.Fatalf("stale ack removed a rescheduled job")
	}
}

func TestMemoryScheduler_Retry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryScheduler(time.Minute)
	_ = s.ScheduleAt(ctx, t0, job("esc-1"))

	leases, _ := s.Claim(ctx, t0, 1)
	_ = s.Retry(ctx, leases[0], t0.Add(10*time.Second))

	if got, _ := s.Claim(ctx, t0.Add(9*time.Second), 1); len(got) != 0 {
		t.Fatalf("retried job claimed too early")
	}
	if got, _ := s.Claim(ctx, t0.Add(10*time.Second), 1); len(got) != 1 {
		t.Fatalf("retried job not claimed when due")
	}
}

func TestDecodeJob(t *testing.T) {
	got, err := decodeJob("dispute.escalation_check:dsp-1")
	if err != nil || got.Kind != entities.JobDisputeEscalationCheck || got.RefID != "dsp-1" {
		t.Fatalf("decode: %v %+v", err, got)
	}
	if _, err := decodeJob("garbage"); err == nil {
		t.Fatalf("expected error for malformed member")
	}
}
