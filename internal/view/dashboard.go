package view

import (
	"context"
	"sync"
	"sync/atomic"

	"fintrack/internal/core"
	"fintrack/internal/log"
	"fintrack/internal/query"
	"fintrack/internal/services"
	"fintrack/internal/stats"
)

// RecentCount is how many transactions the dashboard's recent-activity
// panel shows.
const RecentCount = 5

// Dashboard drives the overview screen: totals and recent activity over
// a time-range scoped window of transactions. It holds no pagination
// state.
type Dashboard struct {
	fetcher *services.Fetcher
	user    core.User

	seq atomic.Uint64

	mu           sync.Mutex
	timeRange    string
	transactions []core.Transaction
	summary      stats.Summary
	recent       []core.Transaction
	loaded       bool
}

// NewDashboard builds a dashboard controller defaulting to the month
// range.
func NewDashboard(store services.Store, user core.User, logger *log.Logger) *Dashboard {
	return &Dashboard{
		fetcher:   services.NewFetcher(store, logger),
		user:      user,
		timeRange: query.RangeMonth,
	}
}

// SetTimeRange switches the window and refetches.
func (d *Dashboard) SetTimeRange(ctx context.Context, timeRange string) {
	d.mu.Lock()
	d.timeRange = timeRange
	d.mu.Unlock()
	d.Refresh(ctx)
}

// Refresh fetches the current window and recomputes the aggregates.
// Stale responses are discarded by sequence number.
func (d *Dashboard) Refresh(ctx context.Context) {
	seq := d.seq.Add(1)
	d.mu.Lock()
	timeRange := d.timeRange
	d.mu.Unlock()

	res := d.fetcher.Fetch(ctx, query.Window(timeRange))

	d.mu.Lock()
	defer d.mu.Unlock()
	if seq != d.seq.Load() {
		return
	}
	d.transactions = res.Transactions
	d.summary = stats.Summarize(res.Transactions)
	d.recent = stats.Recent(res.Transactions, RecentCount)
	d.loaded = true
}

func (d *Dashboard) Summary() stats.Summary {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.summary
}

func (d *Dashboard) Recent() []core.Transaction {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.recent
}

func (d *Dashboard) TimeRange() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timeRange
}

func (d *Dashboard) Loaded() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loaded
}

func (d *Dashboard) User() core.User {
	return d.user
}
