package main

import (
	"context"
	"fmt"

	"marketplace_trust/internal/adapter/persistence/memory"
	"marketplace_trust/internal/adapter/persistence/repository"
	"marketplace_trust/internal/infrastructure/config"
	"marketplace_trust/internal/infrastructure/database"
	"marketplace_trust/internal/infrastructure/metrics"
	"marketplace_trust/internal/infrastructure/notify"
	"marketplace_trust/internal/infrastructure/payments"
	"marketplace_trust/internal/infrastructure/scheduler"
	"marketplace_trust/internal/usecase"
	"marketplace_trust/internal/usecase/interfaces"
	"marketplace_trust/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// app holds the wired use cases and everything that must be closed on exit.
type app struct {
	cfg      config.Config
	log      *zap.Logger
	metrics  *metrics.Metrics
	escrows  *usecase.EscrowUseCase
	disputes *usecase.DisputeUseCase
	fraud    *usecase.FraudUseCase
	runner   *usecase.JobRunner
	queue    scheduler.Queue
	closers  []func()
}

func loadConfigAndLogger() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(logger.Options{
		Env:        cfg.Env,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("build logger: %w", err)
	}
	return cfg, log, nil
}

func newApp(ctx context.Context, cfg config.Config, log *zap.Logger, reg prometheus.Registerer) (*app, error) {
	a := &app{cfg: cfg, log: log, metrics: metrics.New(reg)}
	if err := a.wire(ctx); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *app) wire(ctx context.Context) error {
	var (
		escrowRepo  interfaces.IEscrowRepository
		disputeRepo interfaces.IDisputeRepository
		directory   interfaces.IPlatformDirectory
		history     interfaces.IFraudHistory
		checkLog    interfaces.IFraudCheckLog
	)

	switch a.cfg.Storage.Driver {
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
			Region:          a.cfg.DynamoDB.Region,
			Endpoint:        a.cfg.DynamoDB.Endpoint,
			AccessKeyID:     a.cfg.DynamoDB.AccessKeyID,
			SecretAccessKey: a.cfg.DynamoDB.SecretAccessKey,
		})
		if err != nil {
			return fmt.Errorf("connect dynamodb: %w", err)
		}
		escrows := repository.NewEscrowDynamoRepository(ddb)
		disputes := repository.NewDisputeDynamoRepository(ddb)
		if a.cfg.Storage.CreateTables {
			tables := append(escrows.Tables(), disputes.Tables()...)
			if err := database.EnsureTables(ctx, ddb, a.log, tables...); err != nil {
				return fmt.Errorf("ensure tables: %w", err)
			}
		}
		escrowRepo, disputeRepo = escrows, disputes
	default:
		a.log.Warn("using in-memory escrow and dispute storage")
		escrowRepo = memory.NewEscrowMemoryRepository()
		disputeRepo = memory.NewDisputeMemoryRepository()
	}

	if a.cfg.Postgres.URL != "" {
		pool, err := database.NewPostgresPool(ctx, a.cfg.Postgres.URL, a.cfg.Postgres.MaxConns)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, pool.Close)
		directory = repository.NewPlatformPostgresDirectory(pool)
		history = repository.NewFraudPostgresHistory(pool)
		checkLog = repository.NewFraudCheckPostgresLog(pool)
	} else {
		a.log.Warn("DATABASE_URL not set; platform reads and fraud history are in memory")
		directory = memory.NewPlatformMemoryDirectory()
		history = memory.NewFraudMemoryHistory()
		checkLog = memory.NewFraudCheckMemoryLog()
	}

	gateway, err := payments.NewGateway(payments.Settings{
		Provider:         a.cfg.Payments.Provider,
		StripeSecretKey:  a.cfg.Payments.StripeSecretKey,
		MercadoPagoToken: a.cfg.Payments.MercadoPagoToken,
		Sandbox:          a.cfg.Payments.Sandbox,
	}, a.log, a.metrics)
	if err != nil {
		return fmt.Errorf("payment gateway: %w", err)
	}

	switch a.cfg.Scheduler.Driver {
	case config.SchedulerRedis:
		client, err := database.NewRedisClient(ctx, database.RedisOptions{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		a.closers = append(a.closers, func() { _ = client.Close() })
		a.queue = scheduler.NewRedisScheduler(client, a.cfg.Scheduler.Key, a.cfg.Scheduler.Lease, a.log)
	default:
		a.queue = scheduler.NewMemoryScheduler(a.cfg.Scheduler.Lease)
	}

	var notifier interfaces.INotifier
	switch a.cfg.Kafka.Driver {
	case config.NotifierKafka:
		kn, err := notify.NewKafkaNotifier(notify.KafkaOptions{
			Brokers:    a.cfg.Kafka.Brokers,
			Topic:      a.cfg.Kafka.Topic,
			AdminTopic: a.cfg.Kafka.AdminTopic,
			ClientID:   "marketplace-trust",
		}, a.log, a.metrics)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, kn.Close)
		notifier = kn
	default:
		notifier = notify.NewLogNotifier(a.log, a.metrics)
	}

	a.fraud = usecase.NewFraudUseCase(usecase.FraudDeps{
		History:   history,
		Directory: directory,
		CheckLog:  checkLog,
		Logger:    a.log,
		Metrics:   a.metrics,
	})

	escrowSettings := usecase.DefaultEscrowSettings()
	escrowSettings.FeeRate = a.cfg.Escrow.FeeRateDecimal()
	escrowSettings.MinimumAmount = a.cfg.Escrow.MinimumAmountDecimal()
	escrowSettings.InspectionPeriod = a.cfg.Escrow.InspectionPeriod
	escrowSettings.Currency = a.cfg.Escrow.Currency
	a.escrows = usecase.NewEscrowUseCase(usecase.EscrowDeps{
		Repo:      escrowRepo,
		Directory: directory,
		Gateway:   gateway,
		Notifier:  notifier,
		Scheduler: a.queue,
		Risk:      a.fraud,
		Logger:    a.log,
		Metrics:   a.metrics,
		Settings:  escrowSettings,
	})

	disputeSettings := usecase.DefaultDisputeSettings()
	disputeSettings.ArtisanResponse = a.cfg.Dispute.ArtisanResponse
	a.disputes = usecase.NewDisputeUseCase(usecase.DisputeDeps{
		Repo:      disputeRepo,
		Directory: directory,
		Escrow:    a.escrows,
		Notifier:  notifier,
		Scheduler: a.queue,
		Logger:    a.log,
		Metrics:   a.metrics,
		Settings:  disputeSettings,
	})

	a.runner = usecase.NewJobRunner(a.escrows, a.disputes, a.log, a.metrics)
	return nil
}

func (a *app) dispatcher() *scheduler.Dispatcher {
	cfg := scheduler.DefaultDispatcherConfig()
	if a.cfg.Scheduler.PollInterval > 0 {
		cfg.PollInterval = a.cfg.Scheduler.PollInterval
	}
	if a.cfg.Scheduler.BatchSize > 0 {
		cfg.BatchSize = a.cfg.Scheduler.BatchSize
	}
	return scheduler.NewDispatcher(a.queue, a.runner, cfg, a.log)
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
