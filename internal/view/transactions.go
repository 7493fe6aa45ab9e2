// Package view holds the controllers behind the three screens of the
// client: the dashboard, the transaction list and the user admin view.
// Each controller owns its query parameters and fetched state; the
// current user is injected at construction and never mutated.
package view

import (
	"context"
	"sync"
	"sync/atomic"

	"fintrack/internal/core"
	"fintrack/internal/log"
	"fintrack/internal/query"
	"fintrack/internal/services"
)

// TransactionList drives the paginated, filterable transaction screen.
// The server-returned page is rendered as-is: the filters are a request
// to the store, not a local predicate.
type TransactionList struct {
	fetcher *services.Fetcher
	coord   *services.Coordinator
	user    core.User

	seq atomic.Uint64

	mu           sync.Mutex
	params       query.Params
	transactions []core.Transaction
	totalPages   int
	loaded       bool
}

// NewTransactionList builds a list controller for the given user.
// confirm guards transaction deletion.
func NewTransactionList(store services.Store, user core.User, logger *log.Logger, confirm services.ConfirmFunc) *TransactionList {
	l := &TransactionList{
		user:       user,
		params:     query.New(),
		totalPages: 1,
	}
	l.fetcher = services.NewFetcher(store, logger)
	// The coordinator refetches through the controller so that the
	// refresh always uses the params current at mutation time, not the
	// ones captured when an edit was opened.
	l.coord = services.NewCoordinator(store, user.Role, logger, confirm, l.Refresh)
	return l
}

// Refresh issues a fetch with the current params. Responses arriving
// after a newer fetch was issued are discarded by sequence number, so a
// slow stale response can never overwrite fresher state.
func (l *TransactionList) Refresh(ctx context.Context) {
	seq := l.seq.Add(1)
	l.mu.Lock()
	p := l.params
	l.mu.Unlock()

	res := l.fetcher.Fetch(ctx, p)

	l.mu.Lock()
	defer l.mu.Unlock()
	if seq != l.seq.Load() {
		return
	}
	l.transactions = res.Transactions
	l.totalPages = res.TotalPages
	l.loaded = true
}

func (l *TransactionList) SetSearch(ctx context.Context, search string) {
	l.updateParams(func(p query.Params) query.Params { return p.WithSearch(search) })
	l.Refresh(ctx)
}

func (l *TransactionList) SetTypeFilter(ctx context.Context, typeFilter string) {
	l.updateParams(func(p query.Params) query.Params { return p.WithType(typeFilter) })
	l.Refresh(ctx)
}

func (l *TransactionList) SetCategoryFilter(ctx context.Context, category string) {
	l.updateParams(func(p query.Params) query.Params { return p.WithCategory(category) })
	l.Refresh(ctx)
}

func (l *TransactionList) SetPage(ctx context.Context, page int) {
	l.updateParams(func(p query.Params) query.Params { return p.WithPage(page) })
	l.Refresh(ctx)
}

// NextPage advances one page, clamped to the last known page count.
func (l *TransactionList) NextPage(ctx context.Context) {
	l.mu.Lock()
	page := l.params.Page
	if page < l.totalPages {
		page++
	}
	l.params = l.params.WithPage(page)
	l.mu.Unlock()
	l.Refresh(ctx)
}

// PrevPage goes back one page, never below the first.
func (l *TransactionList) PrevPage(ctx context.Context) {
	l.mu.Lock()
	l.params = l.params.WithPage(l.params.Page - 1)
	l.mu.Unlock()
	l.Refresh(ctx)
}

// Save creates a transaction when id is empty and updates it otherwise.
// Validation and permission failures are returned for inline display;
// the caller keeps the form open so the user can retry or cancel.
func (l *TransactionList) Save(ctx context.Context, id string, in core.Input) error {
	if id == "" {
		return l.coord.Create(ctx, in)
	}
	return l.coord.Update(ctx, id, in)
}

// Delete removes a transaction after confirmation.
func (l *TransactionList) Delete(ctx context.Context, id string) error {
	return l.coord.Delete(ctx, id)
}

// CanMutate reports whether mutation controls should be offered at all.
// A read-only identity renders the list in a strictly non-mutating mode.
func (l *TransactionList) CanMutate() bool {
	return l.user.Role.CanMutate()
}

func (l *TransactionList) Transactions() []core.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.transactions
}

func (l *TransactionList) Page() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.params.Page
}

func (l *TransactionList) TotalPages() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalPages
}

func (l *TransactionList) Params() query.Params {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.params
}

// Loaded reports whether at least one fetch has completed, i.e. the
// controller has left its initial loading state.
func (l *TransactionList) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}

func (l *TransactionList) updateParams(change func(query.Params) query.Params) {
	l.mu.Lock()
	l.params = change(l.params)
	l.mu.Unlock()
}
