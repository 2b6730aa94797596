package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"marketplace_trust/internal/infrastructure/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func dispatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dispatch",
		Short: "Run the scheduled-job dispatcher (auto-release and overdue escalation)",
		RunE: func(cmd *cobra.Command, args []string) error {
			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, log, err := loadConfigAndLogger()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			if cfg.Scheduler.Driver != config.SchedulerRedis {
				return fmt.Errorf("dispatch needs the %s scheduler; the memory scheduler only runs inside serve", config.SchedulerRedis)
			}

			a, err := newApp(ctx, cfg, log, prometheus.DefaultRegisterer)
			if err != nil {
				return err
			}
			defer a.Close()
			return a.dispatcher().Run(ctx)
		},
	}
}
