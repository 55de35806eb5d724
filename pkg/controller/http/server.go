package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/defectboard/defectboard/frontend"
	"github.com/defectboard/defectboard/pkg/domain/interfaces"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Config holds HTTP server configuration
type Config struct {
	Addr  string
	Debug bool
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router    chi.Router
	dashboard interfaces.Dashboard
}

// NewServer creates a new HTTP server serving the dashboard
func NewServer(ctx context.Context, cfg Config, dashboard interfaces.Dashboard) (*Server, error) {
	if dashboard == nil {
		return nil, goerr.New("dashboard is required")
	}

	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	handler := NewDashboardHandler(dashboard)

	router.Get("/health", handler.HandleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Use(TableETag(dashboard.Table().ID.String()))
		r.Get("/options", handler.HandleOptions)
		r.Get("/chart", handler.HandleChart)
		r.Get("/records", handler.HandleRecords)
		r.Get("/records.csv", handler.HandleRecordsCSV)
	})

	if cfg.Debug {
		ctxlog.From(ctx).Info("Debug mode enabled, mounting profiler", "path", "/debug")
		router.Mount("/debug", middleware.Profiler())
	}

	fs, err := frontend.GetHTTPFS()
	if err != nil {
		ctxlog.From(ctx).Warn("Failed to get embedded frontend, using fallback",
			"error", err,
		)
		router.Get("/*", handleFallbackHome)
	} else {
		spa, err := NewSPAHandler(fs)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create frontend handler")
		}
		router.Handle("/*", spa)
	}

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:    router,
		dashboard: dashboard,
	}

	return server, nil
}

// handleFallbackHome handles the root path when frontend is not available
func handleFallbackHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Interactive Dashboard</title></head>
<body>
    <h1>Interactive Dashboard</h1>
    <p>The dashboard frontend is not available. Data is served under <a href="/api/records">/api/records</a>.</p>
</body>
</html>`)); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write fallback home page", "error", err)
	}
}

// writeJSON writes v as a JSON response
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}
