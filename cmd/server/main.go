package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/playperu/nostos/internal/config"
	"github.com/playperu/nostos/internal/database"
	"github.com/playperu/nostos/internal/metrics"
	"github.com/playperu/nostos/internal/migrations"
	"github.com/playperu/nostos/internal/roster"
	"github.com/playperu/nostos/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- Roster ---
	db, err := database.Open(ctx, cfg.RosterDB)
	if err != nil {
		return fmt.Errorf("connecting to roster db: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	people, err := roster.Load(ctx, db)
	if err != nil {
		return fmt.Errorf("loading roster: %w", err)
	}
	logger.Info("roster loaded", "path", cfg.RosterDB, "people", people.Len())

	// --- Metrics ---
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, server.Options{
		People:   people,
		Checks:   map[string]server.Checker{"roster": server.CheckerFunc(db.PingContext)},
		Metrics:  metrics.New(reg),
		Gatherer: reg,
		Map: server.MapConfig{
			Center: server.MapCenter{Lat: cfg.MapCenterLat, Lng: cfg.MapCenterLng},
			Zoom:   cfg.MapZoom,
			APIKey: cfg.MapsAPIKey,
		},
		QRSize: cfg.QRSize,
		SPADir: cfg.SPADir,
	})

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
