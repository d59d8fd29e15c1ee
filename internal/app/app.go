package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/adoption-stats/internal/adapter/postgres"
	reportrepo "github.com/heartmarshall/adoption-stats/internal/adapter/postgres/report"
	"github.com/heartmarshall/adoption-stats/internal/config"
	reportsvc "github.com/heartmarshall/adoption-stats/internal/service/report"
	"github.com/heartmarshall/adoption-stats/internal/transport/middleware"
	"github.com/heartmarshall/adoption-stats/internal/transport/rest"
)

// database is what the HTTP stack needs from the pool.
type database interface {
	postgres.Querier
	Ping(ctx context.Context) error
}

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, serves the statistics API and shuts down gracefully when ctx
// is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	handler, cleanup := NewHandler(cfg, logger, pool, prometheus.NewRegistry())
	defer cleanup()

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// NewHandler wires repository, service, handlers and middleware into the
// HTTP handler. The returned cleanup stops background workers.
func NewHandler(cfg *config.Config, logger *slog.Logger, db database, reg *prometheus.Registry) (http.Handler, func()) {
	reports := reportsvc.NewService(logger, reportrepo.New(db))

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := middleware.NewHTTPMetrics(reg)

	routes := rest.Routes{
		Report: rest.NewReportHandler(reports, logger),
		Health: rest.NewHealthHandler(db, BuildVersion(), logger),
		Middleware: middleware.Chain(
			middleware.RequestID,
			middleware.Logger(logger),
			httpMetrics.Middleware(),
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS),
		),
	}

	if cfg.Metrics.Enabled {
		routes.Metrics = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
		routes.MetricsPath = cfg.Metrics.Path
	}

	cleanup := func() {}
	if cfg.RateLimit.Enabled() {
		limiter := middleware.NewRateLimiter(cfg.RateLimit)
		routes.APIMiddleware = limiter.Middleware()
		cleanup = limiter.Stop
	}

	return rest.NewRouter(routes), cleanup
}

// serve runs srv until ctx is cancelled or the listener fails, then drains
// in-flight requests for at most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		err := srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	if err := <-errCh; err != nil {
		return fmt.Errorf("http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
