// Package services orchestrates the remote store client for the view
// controllers: fail-soft fetching and guarded mutations.
package services

import (
	"context"

	"fintrack/internal/api"
	"fintrack/internal/core"
	"fintrack/internal/log"
	"fintrack/internal/query"
)

// Store is the slice of the API client the services need. The concrete
// *api.Client satisfies it; tests substitute fakes.
type Store interface {
	ListTransactions(ctx context.Context, p query.Params) (api.Page, error)
	CreateTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, t core.Transaction) (core.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

// Result is what a fetch resolves to. It is always renderable: a failed
// fetch degrades to zero transactions over a single page instead of an
// error.
type Result struct {
	Transactions []core.Transaction
	TotalPages   int
}

// Fetcher translates query parameters into remote requests. Failures
// never reach the render path; they go to the logger and the fetch
// resolves empty.
type Fetcher struct {
	store  Store
	logger *log.Logger
}

func NewFetcher(store Store, logger *log.Logger) *Fetcher {
	return &Fetcher{store: store, logger: logger}
}

// Fetch runs one query against the store. Records come back exactly in
// the store's order; totalPages defaults to 1 when the store sends no
// pagination metadata.
func (f *Fetcher) Fetch(ctx context.Context, p query.Params) Result {
	page, err := f.store.ListTransactions(ctx, p)
	if err != nil {
		f.logger.ErrorContext(ctx, "transaction fetch failed",
			"error", err,
			"page", p.Page,
			"search", p.Search,
			"type", p.Type,
			"category", p.Category,
			"time_range", p.Range)
		return Result{TotalPages: 1}
	}

	totalPages := page.Pagination.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}
	return Result{Transactions: page.Transactions, TotalPages: totalPages}
}
