package server

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

	"github.com/jackc/pgx/v5/pgxpool"

	"clickshr/internal/platform/config"
	"clickshr/internal/platform/db"
	"clickshr/internal/platform/metrics"
)

type App struct {
	Config  config.Config
	DB      *pgxpool.Pool
	Metrics *metrics.Collector
	Router  http.Handler
}

// New connects to the database, brings the schema up to date and wires every
// resource onto a router.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("load timezone: %w", err)
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect failed: %w", err)
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrations failed: %w", err)
		}
	}
	if err := db.Seed(ctx, pool, cfg); err != nil {
		pool.Close()
		return nil, fmt.Errorf("seed failed: %w", err)
	}

	collector := metrics.New()
	services := NewServices(pool, cfg, loc)
	return &App{
		Config:  cfg,
		DB:      pool,
		Metrics: collector,
		Router:  NewRouter(cfg, services, pool, collector),
	}, nil
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests.
func Run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Clicks HR server listening", "addr", cfg.Addr, "env", cfg.Environment, "protected", cfg.ProtectedResources)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
