package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/events"
	"fintrack/internal/storage"
)

const maxPageLimit = 100

// transactionPage is the list response envelope: the matching window of
// records plus pagination metadata.
type transactionPage struct {
	Transactions []core.Transaction `json:"transactions"`
	Pagination   pagination         `json:"pagination"`
}

type pagination struct {
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	Total      int `json:"total"`
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := storage.Filter{
		Search:   strings.TrimSpace(q.Get("search")),
		Type:     q.Get("type"),
		Category: q.Get("category"),
	}
	if tr := q.Get("timeRange"); tr != "" {
		from, ok := rangeStart(time.Now(), tr)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid timeRange: must be week, month or year")
			return
		}
		filter.From = from
	}

	// Pagination only applies when the client asks for it; the dashboard
	// fetches its whole window in one go.
	page := 0
	if q.Get("page") != "" || q.Get("limit") != "" {
		page = parsePositiveInt(q.Get("page"), 1)
		limit := parsePositiveInt(q.Get("limit"), 10)
		if limit > maxPageLimit {
			limit = maxPageLimit
		}
		filter.Limit = limit
		filter.Offset = (page - 1) * limit
	}

	transactions, total, err := s.repo.ListTransactions(r.Context(), filter)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "list transactions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not list transactions")
		return
	}
	if transactions == nil {
		transactions = []core.Transaction{}
	}

	totalPages := 1
	if filter.Limit > 0 {
		totalPages = (total + filter.Limit - 1) / filter.Limit
		if totalPages < 1 {
			totalPages = 1
		}
	}
	if page < 1 {
		page = 1
	}

	writeJSON(w, http.StatusOK, transactionPage{
		Transactions: transactions,
		Pagination:   pagination{Page: page, TotalPages: totalPages, Total: total},
	})
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	t, ok := decodeTransaction(w, r)
	if !ok {
		return
	}

	created, err := s.repo.CreateTransaction(r.Context(), t)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "create transaction failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not create transaction")
		return
	}

	s.publishChange(r.Context(), events.ActionCreated, created.ID)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	t, ok := decodeTransaction(w, r)
	if !ok {
		return
	}

	updated, err := s.repo.UpdateTransaction(r.Context(), id, t)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "transaction not found")
		return
	}
	if err != nil {
		s.logger.ErrorContext(r.Context(), "update transaction failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "could not update transaction")
		return
	}

	s.publishChange(r.Context(), events.ActionUpdated, id)
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := s.repo.DeleteTransaction(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "transaction not found")
		return
	}
	if err != nil {
		s.logger.ErrorContext(r.Context(), "delete transaction failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "could not delete transaction")
		return
	}

	s.publishChange(r.Context(), events.ActionDeleted, id)
	w.WriteHeader(http.StatusNoContent)
}

// decodeTransaction parses and validates a transaction payload. It
// writes the error response itself and returns ok=false on failure.
func decodeTransaction(w http.ResponseWriter, r *http.Request) (core.Transaction, bool) {
	var t core.Transaction
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return core.Transaction{}, false
	}

	if t.Amount.IsNegative() {
		writeError(w, http.StatusUnprocessableEntity, "amount must be non-negative")
		return core.Transaction{}, false
	}
	if !t.Type.Valid() {
		writeError(w, http.StatusUnprocessableEntity, "type must be income or expense")
		return core.Transaction{}, false
	}
	if !core.CategoryValid(t.Type, t.Category) {
		writeError(w, http.StatusUnprocessableEntity, "category not valid for transaction type")
		return core.Transaction{}, false
	}
	if t.Date.IsZero() {
		t.Date = core.Today()
	}
	t.Description = strings.TrimSpace(t.Description)
	return t, true
}

// rangeStart returns the calendar-anchored start of the requested
// window: Monday of the current week, the first of the month, or
// January 1st.
func rangeStart(now time.Time, timeRange string) (time.Time, bool) {
	switch timeRange {
	case "week":
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday closes the week
		}
		start := now.AddDate(0, 0, -(weekday - 1))
		return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC), true
	case "month":
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), true
	case "year":
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

func parsePositiveInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
