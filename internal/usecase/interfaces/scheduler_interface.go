package interfaces

import (
	"context"
	"time"

	"marketplace_trust/internal/domain/entities"
)

// IScheduler dispatches jobs at or after the given time, at least once.
type IScheduler interface {
	ScheduleAt(ctx context.Context, at time.Time, job entities.ScheduledJob) error
}
