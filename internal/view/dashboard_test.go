package view

import (
	"context"
	"errors"
	"testing"

	"fintrack/internal/api"
	"fintrack/internal/core"
	"fintrack/internal/query"
)

func TestDashboardRefreshComputesAggregates(t *testing.T) {
	store := &listStore{page: api.Page{Transactions: []core.Transaction{
		{ID: "a", Amount: mustAmount(t, "100"), Type: core.Income, Date: core.NewDate(2024, 1, 5)},
		{ID: "b", Amount: mustAmount(t, "40"), Type: core.Expense, Date: core.NewDate(2024, 1, 10)},
	}}}
	d := NewDashboard(store, regularUser(), testLogger())

	if d.TimeRange() != query.RangeMonth {
		t.Errorf("default range = %q, want month", d.TimeRange())
	}

	d.Refresh(context.Background())

	s := d.Summary()
	if s.Income.Display() != "100.00" || s.Expenses.Display() != "40.00" || s.Balance.Display() != "60.00" {
		t.Errorf("summary = income %s expenses %s balance %s", s.Income.Display(), s.Expenses.Display(), s.Balance.Display())
	}

	recent := d.Recent()
	if len(recent) != 2 || recent[0].ID != "b" {
		t.Errorf("recent = %+v, want newest first", recent)
	}
	if !d.Loaded() {
		t.Error("Refresh must mark the dashboard loaded")
	}
}

func TestDashboardFetchIsUnpaginatedAndScoped(t *testing.T) {
	store := &listStore{}
	d := NewDashboard(store, regularUser(), testLogger())

	d.SetTimeRange(context.Background(), query.RangeWeek)

	p := store.lastParams
	if p.Range != query.RangeWeek {
		t.Errorf("range = %q, want week", p.Range)
	}
	if v := p.Values(); v.Has("page") || v.Has("limit") {
		t.Errorf("dashboard fetch must be unpaginated, got %s", v.Encode())
	}
	if d.TimeRange() != query.RangeWeek {
		t.Errorf("timeRange = %q, want week", d.TimeRange())
	}
}

func TestDashboardRecentCapped(t *testing.T) {
	var txs []core.Transaction
	for day := 1; day <= 8; day++ {
		txs = append(txs, core.Transaction{
			ID:   string(rune('a' + day - 1)),
			Date: core.NewDate(2024, 2, day),
		})
	}
	store := &listStore{page: api.Page{Transactions: txs}}
	d := NewDashboard(store, regularUser(), testLogger())

	d.Refresh(context.Background())

	recent := d.Recent()
	if len(recent) != RecentCount {
		t.Fatalf("recent = %d entries, want %d", len(recent), RecentCount)
	}
	if recent[0].ID != "h" {
		t.Errorf("recent[0] = %s, want the newest transaction", recent[0].ID)
	}
}

func TestDashboardFetchFailureShowsZeros(t *testing.T) {
	store := &listStore{listErr: errors.New("boom")}
	d := NewDashboard(store, regularUser(), testLogger())

	d.Refresh(context.Background())

	s := d.Summary()
	if s.Income.Sign() != 0 || s.Expenses.Sign() != 0 || s.Balance.Sign() != 0 {
		t.Errorf("summary after failure = %+v, want zeros", s)
	}
	if len(d.Recent()) != 0 {
		t.Error("recent list after failure must be empty")
	}
	if !d.Loaded() {
		t.Error("a failed fetch still completes the load")
	}
}
