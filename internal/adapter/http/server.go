package http

import (
	"context"
	"encoding/json"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/flight-delay-dashboard/internal/charts"
	"github.com/couchcryptid/flight-delay-dashboard/internal/domain"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// ChartService builds chart specs from the loaded dataset.
type ChartService interface {
	ReadinessChecker
	Get(id string, f charts.Filter) (charts.Spec, error)
	Definition(id string) (*charts.Definition, bool)
	Definitions() []charts.Definition
	Airlines() []domain.Airline
	Summary() (charts.Summary, error)
}

// Server serves the dashboard pages, the chart API, and the health,
// readiness, and metrics endpoints.
type Server struct {
	httpServer  *http.Server
	charts      ChartService
	pages       *template.Template
	defaultHour int
	logger      *slog.Logger
}

// NewServer creates the dashboard HTTP server. defaultHour is the hour used
// when a request to an hour-filtered chart omits one.
func NewServer(addr string, svc ChartService, defaultHour int, logger *slog.Logger) *Server {
	r := chi.NewMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		charts:      svc,
		pages:       template.Must(template.ParseFS(templateFS, "templates/*.html")),
		defaultHour: defaultHour,
		logger:      logger,
	}

	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		requestLogger(logger),
		middleware.Recoverer,
		middleware.Compress(5),
	)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", handleReady(svc))
	r.Handle("/metrics", promhttp.Handler())

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(static)))

	for _, p := range pageSpecs {
		r.Get(p.Path, s.handlePage(p))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/airlines", s.handleAirlines)
		r.Get("/summary", s.handleSummary)
		r.Get("/charts", s.handleCatalog)
		r.Get("/charts/{id}", s.handleChart)
		r.Get("/charts/{id}/export.xlsx", s.handleExport)
	})

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // client may have gone away
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
