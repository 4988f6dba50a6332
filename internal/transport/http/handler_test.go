package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hostpulse/internal/config"
	"hostpulse/internal/domain"
	"hostpulse/internal/host/hosttest"
	"hostpulse/internal/logger"
	"hostpulse/internal/telemetry"
	"hostpulse/internal/transport/http/middleware"
	"hostpulse/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, p domain.HostProvider) http.Handler {
	t.Helper()

	renderer, err := view.NewHTMLRenderer("")
	require.NoError(t, err)

	log := logger.NewNop()
	builder := telemetry.NewBuilder(p, log, 200*time.Millisecond)

	return NewRouter(log, &RouterDeps{
		Telemetry: NewTelemetryHandler(builder, renderer, log),
	})
}

func get(t *testing.T, h http.Handler, path string) (*http.Response, string) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	res := rec.Result()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, string(body)
}

func TestIndex_AllProbesAvailable(t *testing.T) {
	res, body := get(t, newTestRouter(t, hosttest.Available()), "/")

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", res.Header.Get("Content-Type"))
	assert.NotEmpty(t, res.Header.Get(middleware.RequestIDHeader))

	assert.Contains(t, body, "05h:03m")
	assert.Contains(t, body, "10240 MB used / 16384 MB total")
	assert.Contains(t, body, "3600 MHz")
	assert.Contains(t, body, "350 GB used / 1500 GB total")
	assert.Contains(t, body, "eth0")
	assert.Contains(t, body, "123456 bytes in")
	assert.Contains(t, body, "654321 bytes out")
	assert.NotContains(t, body, domain.Unavailable)
}

func TestIndex_AllProbesUnavailable(t *testing.T) {
	res, body := get(t, newTestRouter(t, hosttest.Unavailable()), "/")

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, body, "MHz")
	assert.NotContains(t, body, "MB used")
	assert.NotContains(t, body, "GB used")
	assert.GreaterOrEqual(t, strings.Count(body, "<td>"+domain.Unavailable+"</td>"), 4)
	assert.Contains(t, body, `<p class="muted">Unavailable</p>`)
}

func TestIndex_RenderFailureIs500(t *testing.T) {
	log := logger.NewNop()
	builder := telemetry.NewBuilder(hosttest.Available(), log, 200*time.Millisecond)
	h := NewRouter(log, &RouterDeps{
		Telemetry: NewTelemetryHandler(builder, failingRenderer{}, log),
	})

	res, body := get(t, h, "/")

	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Contains(t, body, "failed to render report")
}

func TestIndex_RenderFailureLogsRequestID(t *testing.T) {
	var out bytes.Buffer
	log := logger.NewWithWriter(&config.Config{LogLevel: "info", LogFormat: "text"}, &out)
	builder := telemetry.NewBuilder(hosttest.Available(), logger.NewNop(), 200*time.Millisecond)
	h := NewRouter(log, &RouterDeps{
		Telemetry: NewTelemetryHandler(builder, failingRenderer{}, log),
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "7d1f4c2e-5b0a-4f3e-9c1d-2a6b8e0f1234")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var renderLine string
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.Contains(line, "failed to render telemetry report") {
			renderLine = line
		}
	}
	require.NotEmpty(t, renderLine)
	assert.Contains(t, renderLine, "request_id=7d1f4c2e-5b0a-4f3e-9c1d-2a6b8e0f1234")
	assert.Contains(t, renderLine, "cpu_speed")
}

func TestRouter_HealthAndUnknownPaths(t *testing.T) {
	h := newTestRouter(t, hosttest.Available())

	res, body := get(t, h, "/health")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "OK", body)

	res, _ = get(t, h, "/metrics")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServer_StartStopsOnCancel(t *testing.T) {
	srv := NewServer("127.0.0.1:0", http.NotFoundHandler(), logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not stop")
	}
}

type failingRenderer struct{}

func (failingRenderer) Render(io.Writer, domain.Snapshot) error {
	return errors.New(`map has no entry for key "cpu_speed"`)
}
