package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"marketplace_trust/internal/adapter/http/handlers"
	"marketplace_trust/internal/adapter/http/routes"
	"marketplace_trust/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func serveCmd() *cobra.Command {
	var withDispatcher bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API on the configured port.

The scheduled-job dispatcher runs in the same process when the memory
scheduler is configured or --dispatcher is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), withDispatcher)
		},
	}
	cmd.Flags().BoolVar(&withDispatcher, "dispatcher", false, "also run the scheduled-job dispatcher")
	return cmd
}

func runServe(parent context.Context, withDispatcher bool) error {
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

	a, err := newApp(ctx, cfg, log, prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	defer a.Close()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.NewRouter(routes.Handlers{
		Escrow:  handlers.NewEscrowHandler(a.escrows, log),
		Dispute: handlers.NewDisputeHandler(a.disputes, log),
		Risk:    handlers.NewRiskHandler(a.fraud, log),
	}, log, prometheus.DefaultGatherer)

	port := cfg.HTTP.Port
	if port == 0 {
		port = routes.DefaultPort
	}
	srv := routes.NewServer(fmt.Sprintf(":%d", port), router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server listening", zap.Int("port", port), zap.String("storage", cfg.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})
	if withDispatcher || cfg.Scheduler.Driver == config.SchedulerMemory {
		d := a.dispatcher()
		g.Go(func() error { return d.Run(gctx) })
	}
	return g.Wait()
}
