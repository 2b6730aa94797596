package usecase

import (
	"context"
	"fmt"

	"marketplace_trust/internal/domain/entities"
	"marketplace_trust/internal/domain/failure"
	"marketplace_trust/internal/infrastructure/metrics"

	"go.uber.org/zap"
)

type IJobRunner interface {
	Handle(ctx context.Context, job entities.ScheduledJob) error
}

type autoReleaser interface {
	AutoRelease(ctx context.Context, escrowID string) (entities.EscrowTransaction, error)
}

type overdueEscalator interface {
	EscalateOverdue(ctx context.Context, disputeID string) (entities.Dispute, error)
}

// JobRunner executes scheduler deliveries. Delivery is at-least-once, so a
// job whose record already moved on is acknowledged without error.
type JobRunner struct {
	escrows  autoReleaser
	disputes overdueEscalator
	log      *zap.Logger
	metrics  *metrics.Metrics
}

var _ IJobRunner = (*JobRunner)(nil)

func NewJobRunner(escrows autoReleaser, disputes overdueEscalator, log *zap.Logger, m *metrics.Metrics) *JobRunner {
	if log == nil {
		log = zap.NewNop()
	}
	return &JobRunner{escrows: escrows, disputes: disputes, log: log.Named("jobs"), metrics: m}
}

// Handle returns an error only when the job should be delivered again.
func (r *JobRunner) Handle(ctx context.Context, job entities.ScheduledJob) error {
	ctx = AsSystem(ctx)
	var err error
	switch job.Kind {
	case entities.JobEscrowAutoRelease:
		_, err = r.escrows.AutoRelease(ctx, job.RefID)
	case entities.JobDisputeEscalationCheck:
		_, err = r.disputes.EscalateOverdue(ctx, job.RefID)
	default:
		r.metrics.IncJob(string(job.Kind), "unknown")
		r.log.Error("unknown job kind dropped", zap.String("job", job.Key()))
		return nil
	}

	switch {
	case err == nil:
		r.metrics.IncJob(string(job.Kind), "ok")
		return nil
	case failure.HasCode(err, failure.CodeInvalidStateTransition),
		failure.HasCode(err, failure.CodeConcurrencyConflict),
		failure.HasCode(err, failure.CodeNotFound):
		r.metrics.IncJob(string(job.Kind), "skipped")
		r.log.Info("job acknowledged without action", zap.String("job", job.Key()), zap.Error(err))
		return nil
	case failure.Retryable(err):
		r.metrics.IncJob(string(job.Kind), "retry")
		r.log.Warn("job failed, will be redelivered", zap.String("job", job.Key()), zap.Error(err))
		return err
	default:
		r.metrics.IncJob(string(job.Kind), "failed")
		r.log.Error("job failed", zap.String("job", job.Key()), zap.Error(err))
		return fmt.Errorf("job %s: %w", job.Key(), err)
	}
}
