package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/car_insurance_app/internal/core/services"
	"github.com/SscSPs/car_insurance_app/internal/jobs/expiry"
	"github.com/SscSPs/car_insurance_app/internal/middleware"
	"github.com/SscSPs/car_insurance_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// metricsRate bounds scrapes against the worker's metrics listener.
const metricsRate = "60-M"

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Run the policy expiry scanner on a schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWorker(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}

func runWorker(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeRepos, err := openRepositories(ctx, cfg, logger, false)
	if err != nil {
		return err
	}
	defer closeRepos()

	m := metrics.New(prometheus.DefaultRegisterer)
	container := services.NewServiceContainer(cfg, repos, services.WithMetrics(m))

	scanner := expiry.NewScanner(container.Expiry, logger,
		expiry.WithLocation(cfg.Location),
		expiry.WithRetry(cfg.ExpiryScanMaxRetries, cfg.ExpiryScanRetryDelay),
		expiry.WithMetrics(m),
	)
	sched, err := expiry.NewScheduler(ctx, scanner, cfg.ExpiryScanInterval, logger)
	if err != nil {
		return err
	}

	metricsSrv, err := newMetricsServer(":" + cfg.MetricsPort)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sched.Start()
		<-ctx.Done()
		return sched.Shutdown()
	})
	g.Go(func() error {
		return serveUntilDone(ctx, metricsSrv, logger.With(slog.String("listener", "metrics")))
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("Worker exited properly")
	return nil
}

func newMetricsServer(addr string) (*http.Server, error) {
	lim, err := middleware.NewLimiter(metricsRate, nil)
	if err != nil {
		return nil, err
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.GinMiddlewarize(lim))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	return &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}
