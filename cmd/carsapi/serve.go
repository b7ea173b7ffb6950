package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	portssvc "github.com/SscSPs/car_insurance_app/internal/core/ports/services"
	"github.com/SscSPs/car_insurance_app/internal/core/services"
	"github.com/SscSPs/car_insurance_app/internal/dto"
	"github.com/SscSPs/car_insurance_app/internal/handlers"
	"github.com/SscSPs/car_insurance_app/internal/middleware"
	"github.com/SscSPs/car_insurance_app/internal/platform/config"
	"github.com/SscSPs/car_insurance_app/internal/platform/metrics"
	"github.com/SscSPs/car_insurance_app/internal/platform/redis"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/ulule/limiter/v3"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeRepos, err := openRepositories(ctx, cfg, logger, true)
	if err != nil {
		return err
	}
	defer closeRepos()

	if err := dto.RegisterValidators(); err != nil {
		return err
	}

	redisClient, err := redis.New(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		logger.Info("Rate limit counters shared through Redis")
	}
	lim, err := newRateLimiter(cfg, redisClient)
	if err != nil {
		return err
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	container := services.NewServiceContainer(cfg, repos, services.WithMetrics(m))

	r, err := newRouter(cfg, logger, container, m, lim)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return serveUntilDone(ctx, srv, logger)
}

func newRateLimiter(cfg *config.Config, client *redis.Client) (*limiter.Limiter, error) {
	if client == nil {
		return middleware.NewLimiter(cfg.RateLimit, nil)
	}
	return middleware.NewLimiter(cfg.RateLimit, client.Client)
}

// newRouter assembles the gin engine with the global middleware chain.
func newRouter(cfg *config.Config, logger *slog.Logger, container *portssvc.ServiceContainer, m *metrics.Metrics, lim *limiter.Limiter) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.Metrics(m))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.CORSAllowedOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut},
			AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
			ExposeHeaders: []string{"Location", middleware.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}
	if lim != nil {
		r.Use(middleware.RateLimit(lim))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handlers.RegisterRoutes(r, cfg, container)
	return r, nil
}

// serveUntilDone runs srv until ctx is cancelled, then drains it.
func serveUntilDone(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	logger.Info("Server exited properly")
	return nil
}
