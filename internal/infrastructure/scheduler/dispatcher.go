package scheduler

import (
	"context"
	"time"

	"marketplace_trust/internal/domain/failure"
	"marketplace_trust/internal/usecase"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DispatcherConfig tunes the polling loop.
type DispatcherConfig struct {
	PollInterval time.Duration
	BatchSize    int
	Concurrency  int
	// RetryDelay applies to gateway and concurrency failures, FailureDelay to anything else.
	RetryDelay   time.Duration
	FailureDelay time.Duration
}

func DefaultDispatcherConfig() DispatcherConfig {
	return DispatcherConfig{
		PollInterval: time.Second,
		BatchSize:    50,
		Concurrency:  4,
		RetryDelay:   30 * time.Second,
		FailureDelay: 5 * time.Minute,
	}
}

// Dispatcher claims due jobs and hands them to the job runner.
type Dispatcher struct {
	queue  Queue
	runner usecase.IJobRunner
	cfg    DispatcherConfig
	log    *zap.Logger
	now    func() time.Time
}

func NewDispatcher(queue Queue, runner usecase.IJobRunner, cfg DispatcherConfig, log *zap.Logger) *Dispatcher {
	def := DefaultDispatcherConfig()
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = def.PollInterval
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = def.BatchSize
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = def.Concurrency
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = def.RetryDelay
	}
	if cfg.FailureDelay <= 0 {
		cfg.FailureDelay = def.FailureDelay
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{queue: queue, runner: runner, cfg: cfg, log: log.Named("dispatcher"), now: time.Now}
}

// Run polls until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.log.Info("dispatcher started",
		zap.Duration("poll_interval", d.cfg.PollInterval),
		zap.Int("batch_size", d.cfg.BatchSize))

	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()
	for {
		for {
			n, err := d.Tick(ctx)
			if err != nil {
				d.log.Error("dispatch tick failed", zap.Error(err))
				break
			}
			// A full batch usually means more work is already due.
			if n < d.cfg.BatchSize || ctx.Err() != nil {
				break
			}
		}
		select {
		case <-ctx.Done():
			d.log.Info("dispatcher stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// Tick claims one batch and handles it. It returns the number of jobs claimed.
func (d *Dispatcher) Tick(ctx context.Context) (int, error) {
	leases, err := d.queue.Claim(ctx, d.now(), d.cfg.BatchSize)
	if err != nil {
		return 0, err
	}
	if len(leases) == 0 {
		return 0, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.cfg.Concurrency)
	for _, lease := range leases {
		g.Go(func() error {
			d.handle(gctx, lease)
			return nil
		})
	}
	return len(leases), g.Wait()
}

func (d *Dispatcher) handle(ctx context.Context, lease Lease) {
	log := d.log.With(zap.String("job", lease.Job.Key()))

	err := d.runner.Handle(ctx, lease.Job)
	if err == nil {
		if ackErr := d.queue.Ack(ctx, lease); ackErr != nil {
			log.Warn("ack failed, job will be redelivered after its lease", zap.Error(ackErr))
		}
		return
	}

	delay := d.cfg.FailureDelay
	if failure.Retryable(err) {
		delay = d.cfg.RetryDelay
	}
	if retryErr := d.queue.Retry(ctx, lease, d.now().Add(delay)); retryErr != nil {
		log.Warn("reschedule failed, job will be redelivered after its lease", zap.Error(retryErr))
		return
	}
	log.Debug("job rescheduled", zap.Duration("delay", delay), zap.Error(err))
}
