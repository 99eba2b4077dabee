package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/paramveer-prakash/career-sub001/internal/adapter/backend"
	httpadapter "github.com/paramveer-prakash/career-sub001/internal/adapter/http"
	repo "github.com/paramveer-prakash/career-sub001/internal/adapter/repository"
	"github.com/paramveer-prakash/career-sub001/internal/config"
	"github.com/paramveer-prakash/career-sub001/internal/otel"
	"github.com/paramveer-prakash/career-sub001/internal/render"
	"github.com/paramveer-prakash/career-sub001/internal/usecase"
	infra "github.com/paramveer-prakash/career-sub001/pkg/infrastructure"
	"github.com/paramveer-prakash/career-sub001/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, otel.Options{
		Disabled:    cfg.Tracing.Disabled,
		Protocol:    cfg.Tracing.Protocol,
		ServiceName: cfg.Tracing.ServiceName,
	}, logger)
	if err != nil {
		logger.Error("tracing", "error", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	exportMetrics, err := metrics.NewExport(reg)
	if err != nil {
		logger.Error("metrics", "error", err)
		os.Exit(1)
	}

	// infra setup
	source, closeSource := resumeSource(ctx, cfg, logger)
	defer closeSource()

	renderer := infra.NewChromedpRenderer(infra.ChromedpOptions{
		ExecPath: cfg.Export.ChromePath,
		PoolSize: cfg.Export.PoolSize,
		Reuse:    cfg.Export.ReuseBrowser,
		Timeout:  cfg.Export.Timeout,
	})

	templates, err := render.NewBuiltinRegistry()
	if err != nil {
		logger.Error("templates", "error", err)
		os.Exit(1)
	}

	svc, err := usecase.NewExportService(usecase.ExportConfig{
		Templates:       templates,
		Source:          source,
		Renderer:        renderer,
		FallbackEnabled: cfg.FallbackEnabled,
		Metrics:         exportMetrics,
		Logger:          logger,
	})
	if err != nil {
		logger.Error("export service", "error", err)
		os.Exit(1)
	}

	app, err := httpadapter.NewApp(httpadapter.AppOptions{
		Service:      svc,
		Registry:     reg,
		WriteTimeout: cfg.Export.Timeout + 30*time.Second,
	})
	if err != nil {
		logger.Error("http app", "error", err)
		os.Exit(1)
	}

	go func() {
		logger.Info("listening", "port", cfg.Port, "fallback_enabled", cfg.FallbackEnabled)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	if err := app.ShutdownWithTimeout(cfg.Export.Timeout); err != nil {
		logger.Warn("http shutdown", "error", err)
	}
	renderer.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Warn("tracing shutdown", "error", err)
	}
}

// resumeSource prefers the HTTP backend, then the Postgres source. With
// neither configured every request is served from fallback data.
func resumeSource(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (usecase.ResumeSource, func()) {
	if cfg.Backend.BaseURL != "" {
		logger.Info("resume source", "kind", "backend", "base_url", cfg.Backend.BaseURL)
		return backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout), func() {}
	}

	if cfg.Database.URL != "" {
		pool, err := infra.NewResumesPool(ctx, cfg.Database.URL)
		if err != nil {
			logger.Warn("resume database not available", "error", err)
			return nil, func() {}
		}
		logger.Info("resume source", "kind", "postgres")
		return repo.NewResumesRepo(pool), pool.Close
	}

	logger.Warn("no resume source configured, serving fallback data only")
	return nil, func() {}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
