// Package server wires the native build: it serves the compiled SPA and
// proxies the booking API paths to the backend, so the browser only ever
// talks to one origin.
package server

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/gorilla/mux"
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"futmanager/internal/config"
	"futmanager/internal/logger"
)

// NewRouter builds the HTTP router: booking API proxy on /cliente and
// /Aluguel, the SPA handler everywhere else.
func NewRouter(cfg *config.Config) (*mux.Router, error) {
	target, err := url.Parse(cfg.API.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}

	proxy := newAPIProxy(target)

	r := mux.NewRouter()
	r.Use(loggingMiddleware)
	r.PathPrefix("/cliente").Handler(proxy)
	r.PathPrefix("/Aluguel").Handler(proxy)
	r.PathPrefix("/").Handler(&app.Handler{
		Name:        "FutManager",
		ShortName:   "FutManager",
		Description: "Gerenciamento de aluguéis de quadras de futebol",
		Lang:        "pt-BR",
		Styles:      []string{"/web/app.css"},
	})
	return r, nil
}

// newAPIProxy builds a reverse proxy that forwards booking API requests to
// the backend origin, keeping the path intact.
func newAPIProxy(target *url.URL) http.Handler {
	proxy := httputil.NewSingleHostReverseProxy(target)

	director := proxy.Director
	proxy.Director = func(req *http.Request) {
		director(req)
		req.Host = target.Host
	}
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Error("booking API proxy error", "method", r.Method, "path", r.URL.Path, "error", err)
		w.WriteHeader(http.StatusBadGateway)
	}
	return proxy
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
