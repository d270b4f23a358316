// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the catalog over a small JSON HTTP API. The server
// is read-only: it serves search, lookup, comparison, and statistics, and
// never reloads the collection — reload requires a process restart because
// the store is shared without synchronization.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/pdiddy/paper-atlas/internal/catalog"
	"github.com/pdiddy/paper-atlas/internal/query"
	"github.com/pdiddy/paper-atlas/pkg/types"
)

// Server serves the catalog API.
type Server struct {
	store  *catalog.Store
	engine *query.Engine
	logger *zap.Logger
}

// New returns a Server over the given store and engine. logger must not be
// nil; pass zap.NewNop() to disable logging.
func New(store *catalog.Store, engine *query.Engine, logger *zap.Logger) *Server {
	return &Server{store: store, engine: engine, logger: logger}
}

// Handler builds the route tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/papers", s.handlePapers)
		r.Get("/search", s.handleSearch)
		r.Get("/paper/{id}", s.handlePaper)
		r.Get("/statistics", s.handleStatistics)
		r.Get("/compare", s.handleCompare)
	})

	return r
}

// ListenAndServe runs the API on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("serving catalog API", zap.String("addr", addr), zap.Int("papers", s.store.Len()))
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

func (s *Server) handlePapers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.All())
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := types.FilterSet{
		Year:        intParam(q.Get("year")),
		Journal:     q.Get("journal"),
		Methodology: q.Get("methodology"),
		Country:     q.Get("country"),
		SampleSize:  intParam(q.Get("sampleSize")),
		SortBy:      types.SortKey(q.Get("sortBy")),
	}

	results := s.engine.Search(q.Get("q"), filters)
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handlePaper(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	paper, ok := s.store.GetByID(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Paper not found"})
		return
	}
	writeJSON(w, http.StatusOK, paper)
}

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Statistics())
}

// handleCompare resolves a comma-separated ids parameter against the
// collection. Unknown ids are dropped, matching the selection semantics.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	papers := []types.PaperRecord{}
	for _, id := range strings.Split(r.URL.Query().Get("ids"), ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if paper, ok := s.store.GetByID(id); ok {
			papers = append(papers, paper)
		}
	}
	writeJSON(w, http.StatusOK, papers)
}

// writeJSON renders v; an empty result set is an explicit empty array, not
// null, so consumers can distinguish "no results" from a malformed body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.Encode(v)
}

func intParam(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
