package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abgdnv/inventory/pkg/config"
	"github.com/abgdnv/inventory/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChiRouter_ExtraMiddlewareSeesRecoveredPanics(t *testing.T) {
	// given
	m := metrics.NewHTTPMetrics("inventory")
	mux := NewChiRouter(slog.New(slog.NewJSONHandler(io.Discard, nil)), m.Middleware)
	mux.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	// when
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))

	// then
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"internal","detail":"Internal Server Error"}`, rr.Body.String())

	exposition := httptest.NewRecorder()
	m.Handler().ServeHTTP(exposition, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, exposition.Body.String(),
		`http_requests_total{method="GET",path="/boom",service="inventory",status="500"} 1`)
}

func TestNewChiRouter_EchoesRequestID(t *testing.T) {
	// given
	mux := NewChiRouter(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	mux.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-Id", "abc-123")

	// when
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	// then
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-Id"))
}

func TestNewHTTPServer(t *testing.T) {
	// given
	var cfg config.HTTPConfig
	cfg.Host = "127.0.0.1"
	cfg.Port = 8081
	cfg.MaxHeaderBytes = 4096
	cfg.Timeout.Read = time.Second
	cfg.Timeout.Write = 2 * time.Second
	cfg.Timeout.Idle = 3 * time.Second
	cfg.Timeout.ReadHeader = 4 * time.Second

	// when
	srv := NewHTTPServer(cfg, http.NotFoundHandler(), slog.New(slog.NewJSONHandler(io.Discard, nil)))

	// then
	assert.Equal(t, "127.0.0.1:8081", srv.Addr)
	assert.Equal(t, 4096, srv.MaxHeaderBytes)
	assert.Equal(t, time.Second, srv.ReadTimeout)
	assert.Equal(t, 2*time.Second, srv.WriteTimeout)
	assert.Equal(t, 3*time.Second, srv.IdleTimeout)
	assert.Equal(t, 4*time.Second, srv.ReadHeaderTimeout)
	assert.NotNil(t, srv.ErrorLog)
}
