package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fordrm/the-a-team-sub000/internal/adapter/postgres"
	"github.com/fordrm/the-a-team-sub000/internal/auth"
	"github.com/fordrm/the-a-team-sub000/internal/config"
	"github.com/fordrm/the-a-team-sub000/internal/transport/middleware"
	"github.com/fordrm/the-a-team-sub000/internal/transport/rest"
)

// Run is the API server entry point. It loads configuration, connects to
// the database, optionally applies migrations, and serves HTTP until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		buildAttrs(),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)

	if cfg.Database.AutoMigrate {
		applied, err := postgres.MigrateUp(ctx, cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	svcs := newServices(pool, cfg, logger)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := NewRouter(Handlers{
		Health:        rest.NewHealthHandler(pool, BuildVersion()).WithAlertPolicy(cfg.Alert.ThrottleWindow, cfg.Alert.StaleContradictionAfter),
		Alert:         rest.NewAlertHandler(svcs.alert, logger),
		Contradiction: rest.NewContradictionHandler(svcs.contradiction, logger),
		Agreement:     rest.NewAgreementHandler(svcs.agreement, logger),
		Admin:         rest.NewAdminHandler(svcs.sweep, logger),
	}, auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL), limiter, cfg, logger)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done or the listener fails.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// RunSweep performs one unresolved-contradiction sweep under the configured
// service actor and returns once every stale subject has been checked.
func RunSweep(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(ctx, cfg.Sweep.Timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	report, err := newServices(pool, cfg, logger).sweep.Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("sweep completed",
		slog.Int("subjects", report.Subjects),
		slog.Int("checked", report.Checked),
		slog.Duration("duration", report.Duration),
	)
	return nil
}
