// Package api serves the catalog documents, dashboard views and the
// telemetry collector over HTTP.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"ResearchCatalog/internal/catalog"
	"ResearchCatalog/internal/infrastructure/metrics"
	"ResearchCatalog/internal/ports"
)

// SnapshotReader yields the active catalog snapshot, nil before first load.
type SnapshotReader interface {
	Current() *catalog.Snapshot
}

// Deps are the collaborators of the HTTP server. Metrics may be nil.
type Deps struct {
	Catalog        SnapshotReader
	Sink           ports.EventSink
	Metrics        *metrics.Metrics
	Logger         *slog.Logger
	AllowedOrigins []string
	Clock          func() time.Time
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	catalog   SnapshotReader
	sink      ports.EventSink
	metrics   *metrics.Metrics
	logger    *slog.Logger
	origins   []string
	clock     func() time.Time
	validator *Validator
	router    *chi.Mux
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	s := &Server{
		catalog:   deps.Catalog,
		sink:      deps.Sink,
		metrics:   deps.Metrics,
		logger:    logger,
		origins:   origins,
		clock:     clock,
		validator: NewValidator(),
		router:    chi.NewRouter(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	// Raw documents, as published for static hosting.
	s.router.Get("/congresses.json", s.handleCongressDocument)
	s.router.Get("/revistas.json", s.handleJournalDocument)

	s.router.Post("/collect", s.handleCollect)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/congresses", s.handleCongressView)
		r.Get("/journals", s.handleJournalView)
		r.Get("/careers", s.handleCareers)
	})

	if s.metrics != nil {
		s.router.Handle("/metrics", s.metrics.Handler())
	}
}

// unmatchedRoute labels requests no route pattern matched, keeping raw paths
// out of metric labels.
const unmatchedRoute = "unmatched"

// requestLogger logs each request through slog and feeds the latency histogram.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		if s.metrics != nil {
			s.metrics.ObserveRequest(route, status, elapsed)
		}
		s.logger.Debug("http request",
			"method", r.Method,
			"route", route,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"elapsed", elapsed,
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
