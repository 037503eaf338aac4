package main

import (
	"context"
	"errors"
	"launcher/internal/config"
	"launcher/internal/ops"
	"launcher/internal/worker"
	"launcher/pkg/logger"
	"launcher/pkg/metrics"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps ops.Deps) func(ctx context.Context) {
	server, err := ops.NewServer(deps, ops.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create ops server", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting ops server...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start ops server", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping ops server...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop ops server", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the lifecycle workers and the ops server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			registry := prometheus.NewRegistry()
			registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			meterProvider, err := metrics.NewMeterProvider(registry)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			controller := getController(ctx, cfg, strg, meterProvider)

			// workers are stopped explicitly below so running jobs can finish
			riverClient, err := worker.Start(context.WithoutCancel(ctx), strg.Pool, controller, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}
			logger.Info(ctx, "workers started", zap.Int("maxWorkers", cfg.Worker.MaxWorkers))

			stopServer := setupServer(ctx, cfg, ops.Deps{Database: strg, Registry: registry})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopServer(shutdownCtx)

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				// running operations revert their domains when cancelled
				logger.Warn(ctx, "workers did not stop in time, cancelling running jobs", zap.Error(err))
				cancelCtx, cancelStop := context.WithTimeout(context.Background(), cfg.Lifecycle.RevertTimeout)
				defer cancelStop()
				if err := riverClient.StopAndCancel(cancelCtx); err != nil {
					logger.Error(ctx, "could not stop workers", zap.Error(err))
				}
			}

			if err := meterProvider.Shutdown(shutdownCtx); err != nil {
				logger.Warn(ctx, "could not shut down meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
