package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fintrack/internal/query"
	"fintrack/internal/view"
)

var dashboardRange string

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show income/expense totals and recent activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch dashboardRange {
		case query.RangeWeek, query.RangeMonth, query.RangeYear:
		default:
			return fmt.Errorf("invalid --range %q: must be week, month or year", dashboardRange)
		}

		d := view.NewDashboard(client, currentUser, logger.WithComponent("dashboard"))
		d.SetTimeRange(cmd.Context(), dashboardRange)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Welcome back, %s!\n\n", currentUser.Name)

		summary := d.Summary()
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Total Income\t%s\n", summary.Income.Display())
		fmt.Fprintf(w, "Total Expenses\t%s\n", summary.Expenses.Display())
		fmt.Fprintf(w, "Net Balance\t%s\n", summary.Balance.Display())
		w.Flush()

		recent := d.Recent()
		fmt.Fprintf(out, "\nRecent Transactions (%s)\n", dashboardRange)
		if len(recent) == 0 {
			fmt.Fprintln(out, "No transactions found. Start by adding your first transaction.")
			return nil
		}
		w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, t := range recent {
			sign := "+"
			if t.Type == "expense" {
				sign = "-"
			}
			label := t.Description
			if label == "" {
				label = t.Category
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s%s\n", t.Date, label, t.Category, sign, t.Amount.Display())
		}
		w.Flush()
		return nil
	},
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardRange, "range", query.RangeMonth, "time range: week, month or year")
}
