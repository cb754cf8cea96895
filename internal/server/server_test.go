package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futmanager/internal/config"
)

func newTestRouter(t *testing.T, backend http.Handler) http.Handler {
	t.Helper()
	api := httptest.NewServer(backend)
	t.Cleanup(api.Close)

	cfg := &config.Config{}
	cfg.Server.Port = 8000
	cfg.API.BaseURL = api.URL
	cfg.API.TimeoutSeconds = 5

	r, err := NewRouter(cfg)
	require.NoError(t, err)
	return r
}

func TestRouterProxiesBookingAPIPaths(t *testing.T) {
	var gotPath, gotMethod string
	router := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		io.WriteString(w, `[]`)
	}))

	t.Run("GET /cliente", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cliente", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/cliente", gotPath)
	})

	t.Run("DELETE /cliente/7", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/cliente/7", nil))
		assert.Equal(t, "/cliente/7", gotPath)
		assert.Equal(t, http.MethodDelete, gotMethod)
	})

	t.Run("PUT /Aluguel/5", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/Aluguel/5", strings.NewReader(`{}`)))
		assert.Equal(t, "/Aluguel/5", gotPath)
		assert.Equal(t, http.MethodPut, gotMethod)
	})
}

func TestRouterServesTheSPAElsewhere(t *testing.T) {
	router := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("SPA paths must not reach the backend proxy")
	}))

	for _, path := range []string{"/", "/clientes", "/alugueis"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html", path)
	}
}

func TestRouterProxyReportsBadGateway(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Port = 8000
	cfg.API.BaseURL = "http://127.0.0.1:1" // nothing listens here
	cfg.API.TimeoutSeconds = 1

	router, err := NewRouter(cfg)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cliente", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
