package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"marketplace_trust/internal/domain/entities"
)

// Lease is a claimed job. Token identifies the claim so that an ack never
// removes a job that was rescheduled while it was being handled.
type Lease struct {
	Job   entities.ScheduledJob
	Token int64
}

// Queue is the storage side of the scheduler.
type Queue interface {
	ScheduleAt(ctx context.Context, at time.Time, job entities.ScheduledJob) error
	Claim(ctx context.Context, now time.Time, limit int) ([]Lease, error)
	Ack(ctx context.Context, lease Lease) error
	Retry(ctx context.Context, lease Lease, at time.Time) error
}

func encodeJob(job entities.ScheduledJob) string {
	return job.Key()
}

func decodeJob(member string) (entities.ScheduledJob, error) {
	kind, ref, ok := strings.Cut(member, ":")
	if !ok || kind == "" || ref == "" {
		return entities.ScheduledJob{}, fmt.Errorf("scheduler: malformed job %q", member)
	}
	return entities.ScheduledJob{Kind: entities.ScheduledJobKind(kind), RefID: ref}, nil
}
