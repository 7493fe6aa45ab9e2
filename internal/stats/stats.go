// Package stats derives aggregate views over a list of transactions.
// Every function here is pure: no hidden state, no network access, and
// the caller's slice is never mutated.
package stats

import (
	"sort"

	"fintrack/internal/core"
)

// Summary holds the income/expense totals and their difference for a set
// of transactions.
type Summary struct {
	Income   core.Amount
	Expenses core.Amount
	Balance  core.Amount
}

// Summarize computes exact decimal totals over the given transactions.
// Balance is income minus expenses by construction. An empty or nil
// input yields all zeros.
func Summarize(transactions []core.Transaction) Summary {
	var income, expenses core.Amount
	for _, t := range transactions {
		switch t.Type {
		case core.Income:
			income = income.Add(t.Amount)
		case core.Expense:
			expenses = expenses.Add(t.Amount)
		}
	}
	return Summary{
		Income:   income,
		Expenses: expenses,
		Balance:  income.Sub(expenses),
	}
}

// Recent returns up to n transactions ordered by date descending. The
// sort is stable, so transactions sharing a date keep their relative
// input order. The input slice is copied, never reordered in place.
func Recent(transactions []core.Transaction, n int) []core.Transaction {
	if n <= 0 || len(transactions) == 0 {
		return nil
	}
	sorted := make([]core.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
