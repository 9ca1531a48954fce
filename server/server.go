// Package server exposes named schemas over HTTP: descriptors can be stored
// and fetched, and JSON bodies validated against them.
//
//	GET  /healthz
//	GET  /metrics
//	GET  /schemas
//	GET  /schemas/{name}
//	PUT  /schemas/{name}
//	POST /validate/{name}
package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/dsl"
	"github.com/reoring/skema/importer"
	"github.com/reoring/skema/middleware"
	"github.com/reoring/skema/registry"
)

// Server serves the validation API.
type Server struct {
	reg     *registry.Registry
	store   registry.DocumentStore
	logger  *slog.Logger
	metrics *metrics
	opt     skema.ParseOpt
	newID   func() string
}

type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRegistry serves an existing registry instead of an empty one.
func WithRegistry(reg *registry.Registry) Option {
	return func(s *Server) {
		s.reg = reg
	}
}

// WithStore persists PUT descriptors and resolves registry misses.
func WithStore(store registry.DocumentStore) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithParseOpt sets the front-door options used for request bodies.
func WithParseOpt(opt skema.ParseOpt) Option {
	return func(s *Server) {
		s.opt = opt
	}
}

// New creates a server. Without options it serves an empty registry backed
// by a memory store.
func New(opts ...Option) *Server {
	s := &Server{
		metrics: newMetrics(),
		opt:     middleware.DefaultParseOpt(),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if s.reg == nil {
		s.reg = registry.New(registry.WithLogger(s.logger))
	}
	if s.store == nil {
		s.store = registry.NewMemoryStore()
	}
	return s
}

// Registry returns the served registry.
func (s *Server) Registry() *registry.Registry { return s.reg }

// Preload registers every descriptor already in the store.
func (s *Server) Preload(ctx context.Context) error {
	names, err := s.reg.LoadAll(ctx, s.store)
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "preloaded schemas", "count", len(names))
	return nil
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	r.Get("/schemas", s.listSchemas)
	r.Get("/schemas/{name}", s.getSchema)
	r.Put("/schemas/{name}", s.putSchema)
	r.Post("/validate/{name}", s.validate)
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler(), ReadHeaderTimeout: 10 * time.Second}
	errc := make(chan error, 1)
	go func() {
		s.logger.InfoContext(ctx, "listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.InfoContext(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}

func (s *Server) listSchemas(w http.ResponseWriter, _ *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, map[string]any{"schemas": s.reg.Names()})
}

func (s *Server) resolve(w http.ResponseWriter, r *http.Request, name string) (skema.Schema, bool) {
	sch, err := s.reg.Resolve(r.Context(), s.store, name)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, registry.ErrNotFound) {
			status = http.StatusNotFound
		}
		middleware.WriteJSON(w, status, map[string]any{"error": err.Error()})
		return nil, false
	}
	return sch, true
}

func (s *Server) getSchema(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	sch, ok := s.resolve(w, r, name)
	if !ok {
		return
	}
	desc, err := dsl.ExportDescriptor(sch)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, skema.ErrLazyExport) {
			status = http.StatusUnprocessableEntity
		}
		middleware.WriteJSON(w, status, map[string]any{"error": err.Error()})
		return
	}
	middleware.WriteJSON(w, http.StatusOK, desc)
}

func (s *Server) putSchema(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody()))
	if err != nil {
		middleware.WriteJSON(w, http.StatusRequestEntityTooLarge, map[string]any{"error": err.Error()})
		return
	}
	v, err := skema.DecodeJSON(ctx, body, s.opt)
	if err != nil {
		middleware.WriteJSON(w, http.StatusBadRequest, middleware.ErrorPayload(err))
		return
	}
	doc, ok := v.(map[string]any)
	if !ok {
		middleware.WriteJSON(w, http.StatusBadRequest, map[string]any{"error": "descriptor must be a JSON object"})
		return
	}
	sch, diag, err := importer.Import(doc)
	if err != nil {
		middleware.WriteJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
		return
	}
	if err := s.store.Put(ctx, name, doc); err != nil {
		s.logger.ErrorContext(ctx, "store descriptor", "name", name, "error", err)
		middleware.WriteJSON(w, http.StatusInternalServerError, map[string]any{"error": "could not store descriptor"})
		return
	}
	s.reg.Register(name, sch)
	s.logger.InfoContext(ctx, "schema stored", "name", name, "warnings", len(diag.Warnings()))
	warnings := diag.Warnings()
	if warnings == nil {
		warnings = []string{}
	}
	middleware.WriteJSON(w, http.StatusOK, map[string]any{"name": name, "warnings": warnings})
}

func (s *Server) validate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")
	sch, ok := s.resolve(w, r, name)
	if !ok {
		return
	}
	id := s.newID()
	start := time.Now()
	v, err := skema.ParseJSONReader(ctx, sch, r.Body, s.opt)
	elapsed := time.Since(start)
	if err != nil {
		status := middleware.Status(err)
		result := "invalid"
		if status == http.StatusBadRequest {
			result = "malformed"
		}
		s.metrics.observe(name, result, elapsed)
		s.logger.InfoContext(ctx, "validation failed", "id", id, "schema", name, "result", result)
		payload := middleware.ErrorPayload(err)
		payload["id"] = id
		payload["valid"] = false
		middleware.WriteJSON(w, status, payload)
		return
	}
	s.metrics.observe(name, "valid", elapsed)
	s.logger.DebugContext(ctx, "validation passed", "id", id, "schema", name)
	middleware.WriteJSON(w, http.StatusOK, map[string]any{"id": id, "valid": true, "value": v})
}

func (s *Server) maxBody() int64 {
	if s.opt.MaxBytes > 0 {
		return s.opt.MaxBytes
	}
	return DefaultConfig().MaxBodyBytes
}
