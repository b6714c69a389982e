package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetrics_Middleware(t *testing.T) {
	// given
	m := NewHTTPMetrics("inventory")
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/products/{key}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/products", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[]"))
	})

	// when
	for _, path := range []string{"/products/1", "/products/2", "/products"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	// then
	assert.InDelta(t, 2, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/products/{key}", "404")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/products", "200")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.inFlight), 0)
}

func TestHTTPMetrics_Handler(t *testing.T) {
	m := NewHTTPMetrics("inventory")
	m.requests.WithLabelValues(http.MethodPost, "/products", "201").Inc()

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `http_requests_total{method="POST",path="/products",service="inventory",status="201"} 1`)
}
