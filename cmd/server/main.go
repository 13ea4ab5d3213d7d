package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/cesargomez89/soundscout/internal/app"
	"github.com/cesargomez89/soundscout/internal/catalog"
	"github.com/cesargomez89/soundscout/internal/config"
	httpapp "github.com/cesargomez89/soundscout/internal/http"
	"github.com/cesargomez89/soundscout/internal/logger"
	"github.com/cesargomez89/soundscout/internal/metrics"
	"github.com/cesargomez89/soundscout/internal/watcher"
)

func main() {
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Initialize Logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	defer appLogger.Close()

	var provider catalog.Provider
	if cfg.MockProvider {
		appLogger.Warn("Using the built-in mock catalog")
		provider = catalog.NewMockProvider()
	}

	a, err := app.New(cfg, appLogger, provider)
	if err != nil {
		appLogger.Error("Failed to init search stack", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Build the gazetteer from the stores so local search works right away.
	if _, err := a.Engine.Precache(ctx, false); err != nil {
		appLogger.Warn("Initial precache incomplete", "error", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.Register(reg)

	// Initialize Router
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	h := httpapp.NewHandler(a.Engine, a.Registry, appLogger)
	h.RegisterRoutes(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLogger.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		if _, err := a.Engine.Precache(gctx, true); err != nil {
			appLogger.Warn("Live precache incomplete", "error", err)
		}
		return nil
	})

	if cfg.SeedsFile != "" {
		w := watcher.New(cfg.SeedsFile, a.Refresh, appLogger.WithComponent("watcher").Logger)
		g.Go(func() error {
			return w.Run(gctx)
		})
	}

	// Graceful Shutdown
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
	appLogger.Info("Server exiting")
}
