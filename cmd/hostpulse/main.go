package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"hostpulse/internal/config"
	"hostpulse/internal/host"
	"hostpulse/internal/logger"
	"hostpulse/internal/telemetry"
	transport "hostpulse/internal/transport/http"
	"hostpulse/internal/view"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	appLog := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	renderer, err := view.NewHTMLRenderer(cfg.TemplateDir)
	if err != nil {
		appLog.Error("failed to load templates", "dir", cfg.TemplateDir, "error", err)
		return
	}

	provider := host.NewProvider(appLog)
	builder := telemetry.NewBuilder(provider, appLog, cfg.ProbeTimeout)

	router := transport.NewRouter(appLog, &transport.RouterDeps{
		Telemetry: transport.NewTelemetryHandler(builder, renderer, appLog),
	})

	srv := transport.NewServer(cfg.Address, router, appLog)
	if err := srv.Start(ctx); err != nil {
		appLog.Error("http server error", "error", err)
		return
	}

	appLog.Info("server stopped")
}
