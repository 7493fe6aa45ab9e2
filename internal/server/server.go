// Package server implements the HTTP interface of fintrackd, the
// reference transaction store consumed by the fintrack client.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"fintrack/internal/log"
	"fintrack/internal/storage"
)

// changePublisher is the slice of the events package the server uses. A
// nil publisher disables change events entirely.
type changePublisher interface {
	PublishChange(ctx context.Context, action, transactionID string) error
}

type Server struct {
	repo   *storage.Repository
	events changePublisher
	logger *log.Logger
}

// New builds the server. events may be nil when AMQP is not configured.
func New(repo *storage.Repository, events changePublisher, logger *log.Logger) *Server {
	return &Server{repo: repo, events: events, logger: logger}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)

	mux.HandleFunc("GET /transactions", s.handleListTransactions)
	mux.HandleFunc("POST /transactions", s.handleCreateTransaction)
	mux.HandleFunc("PUT /transactions/{id}", s.handleUpdateTransaction)
	mux.HandleFunc("DELETE /transactions/{id}", s.handleDeleteTransaction)

	mux.HandleFunc("GET /users", s.handleListUsers)
	mux.HandleFunc("DELETE /users/{id}", s.handleDeleteUser)

	return s.logRequests(mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// publishChange reports a mutation to AMQP when configured. Publish
// failures are logged and never fail the request.
func (s *Server) publishChange(ctx context.Context, action, id string) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishChange(ctx, action, id); err != nil {
		s.logger.ErrorContext(ctx, "change event publish failed",
			"error", err, "action", action, "id", id)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// statusRecorder captures the response code for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.InfoContext(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds())
	})
}
