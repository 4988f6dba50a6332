package http

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"hostpulse/internal/domain"
	"hostpulse/internal/logger"
	"hostpulse/internal/transport/http/middleware"
)

type SnapshotBuilder interface {
	Build(ctx context.Context) domain.Snapshot
}

type Renderer interface {
	Render(w io.Writer, snap domain.Snapshot) error
}

type TelemetryHandler struct {
	builder  SnapshotBuilder
	renderer Renderer
	log      logger.Logger
}

func NewTelemetryHandler(builder SnapshotBuilder, renderer Renderer, log logger.Logger) *TelemetryHandler {
	return &TelemetryHandler{
		builder:  builder,
		renderer: renderer,
		log:      log,
	}
}

// Index always answers 200 unless rendering fails: probe failures are
// already placeholders inside the snapshot.
func (h *TelemetryHandler) Index(w http.ResponseWriter, r *http.Request) {
	log := h.log.With("request_id", middleware.RequestIDFrom(r.Context()))

	snap := h.builder.Build(r.Context())

	buf := &bytes.Buffer{}
	if err := h.renderer.Render(buf, snap); err != nil {
		log.Error("failed to render telemetry report", "error", err)
		http.Error(w, "internal server error: failed to render report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(w); err != nil {
		log.Error("failed to write html response", "error", err.Error())
	}
}
