package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/managementsnbllc-hub/eventmap-toronto/internal/adapters/http/api"
	app "github.com/managementsnbllc-hub/eventmap-toronto/internal/app"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/config"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/dataset"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/geo"
	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/model"
	"github.com/managementsnbllc-hub/eventmap-toronto/pkg/logger"
	"github.com/managementsnbllc-hub/eventmap-toronto/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout           = 10 * time.Second
	writeTimeout          = 10 * time.Second
	idleTimeout           = 60 * time.Second
	readHeaderTimeout     = 5 * time.Second
	shutdownTimeout       = 30 * time.Second
	systemMetricsInterval = 10 * time.Second

	demoEventCount = 48
)

func main() {
	// Disable default Go metrics collection to avoid duplicate metrics;
	// we collect our own system metrics instead.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	seed, err := loadSeed(ctx, cfg, log)
	if err != nil {
		os.Stderr.WriteString("failed to load dataset: " + err.Error() + "\n")
		return
	}

	svc := app.New(
		app.WithLogger(log),
		app.WithReference(geo.Point{Latitude: cfg.RefLat, Longitude: cfg.RefLon}),
		app.WithMaxResults(cfg.MaxResults),
		app.WithSeedEvents(seed),
	)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return
	}
	defer svc.Stop()

	go startSystemMetricsUpdater(ctx)

	// HTTP mux and routes.
	mux := http.NewServeMux()
	apiServer := api.NewServer(svc, svc)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

// loadSeed picks the startup dataset: an external file when configured,
// otherwise generated demo events anchored to the current time.
func loadSeed(ctx context.Context, cfg *config.Config, log logger.Logger) ([]model.Event, error) {
	if cfg.DatasetPath != "" {
		events, err := dataset.LoadFile(cfg.DatasetPath)
		if err != nil {
			return nil, err
		}
		log.Info(ctx, "loaded dataset file", logger.String("path", cfg.DatasetPath), logger.Int("events", len(events)))
		return events, nil
	}
	if !cfg.SeedDataset {
		return nil, nil
	}
	events := dataset.Generate(demoEventCount, dataset.WithBaseTime(time.Now()))
	log.Info(ctx, "seeded demo dataset", logger.Int("events", len(events)))
	return events, nil
}

// startSystemMetricsUpdater periodically refreshes system gauges.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			metrics.UpdateSystemMemoryUsage(m.Alloc)
			metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())
		}
	}
}
