// Package http
package http

import (
	"net/http"

	"hostpulse/internal/logger"
	"hostpulse/internal/transport/http/middleware"
)

type RouterDeps struct {
	Telemetry *TelemetryHandler
}

func NewRouter(log logger.Logger, deps *RouterDeps) http.Handler {
	mux := http.NewServeMux()

	globalMw := middleware.New()
	globalMw.Use(middleware.RequestID())
	globalMw.Use(middleware.AccessLog(log))

	// HEALTH
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("OK"))
	})

	// REPORT
	mux.HandleFunc("GET /{$}", deps.Telemetry.Index)

	return globalMw.Then(mux)
}
