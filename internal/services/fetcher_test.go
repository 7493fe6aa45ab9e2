package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"fintrack/internal/api"
	"fintrack/internal/core"
	"fintrack/internal/log"
	"fintrack/internal/query"
)

func testLogger() *log.Logger {
	return log.NewWithHandler(slog.NewTextHandler(io.Discard, nil), "test")
}

// fakeStore counts calls and returns canned responses.
type fakeStore struct {
	page    api.Page
	listErr error
	mutErr  error

	lists   int
	creates int
	updates int
	deletes int

	lastParams query.Params
}

func (f *fakeStore) ListTransactions(ctx context.Context, p query.Params) (api.Page, error) {
	f.lists++
	f.lastParams = p
	return f.page, f.listErr
}

func (f *fakeStore) CreateTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	f.creates++
	return t, f.mutErr
}

func (f *fakeStore) UpdateTransaction(ctx context.Context, id string, t core.Transaction) (core.Transaction, error) {
	f.updates++
	return t, f.mutErr
}

func (f *fakeStore) DeleteTransaction(ctx context.Context, id string) error {
	f.deletes++
	return f.mutErr
}

func TestFetchSuccess(t *testing.T) {
	store := &fakeStore{page: api.Page{
		Transactions: []core.Transaction{{ID: "t1"}, {ID: "t2"}},
		Pagination:   api.Pagination{TotalPages: 3},
	}}
	f := NewFetcher(store, testLogger())

	res := f.Fetch(context.Background(), query.New())
	if len(res.Transactions) != 2 {
		t.Errorf("transactions = %d, want 2", len(res.Transactions))
	}
	if res.TotalPages != 3 {
		t.Errorf("totalPages = %d, want 3", res.TotalPages)
	}
	// Store order is preserved as-is.
	if res.Transactions[0].ID != "t1" {
		t.Error("fetcher reordered the store's records")
	}
}

func TestFetchFailureDegradesToEmpty(t *testing.T) {
	store := &fakeStore{listErr: errors.New("connection refused")}
	f := NewFetcher(store, testLogger())

	res := f.Fetch(context.Background(), query.New())
	if len(res.Transactions) != 0 {
		t.Errorf("failed fetch returned %d transactions, want 0", len(res.Transactions))
	}
	if res.TotalPages != 1 {
		t.Errorf("failed fetch totalPages = %d, want 1", res.TotalPages)
	}
}

func TestFetchDefaultsMissingPagination(t *testing.T) {
	store := &fakeStore{page: api.Page{Transactions: []core.Transaction{{ID: "t1"}}}}
	f := NewFetcher(store, testLogger())

	res := f.Fetch(context.Background(), query.Window(query.RangeMonth))
	if res.TotalPages != 1 {
		t.Errorf("totalPages without metadata = %d, want 1", res.TotalPages)
	}
}
