package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fintrack/internal/core"
	"fintrack/internal/view"
)

var (
	listSearch   string
	listType     string
	listCategory string
	listPage     int

	txAmount      string
	txType        string
	txCategory    string
	txDescription string
	txDate        string
)

var transactionsCmd = &cobra.Command{
	Use:     "transactions",
	Aliases: []string{"tx"},
	Short:   "Browse and manage transactions",
}

var transactionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions with filters and pagination",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		l := view.NewTransactionList(client, currentUser, logger.WithComponent("transactions"), stdinConfirmer())
		if listSearch != "" {
			l.SetSearch(ctx, listSearch)
		}
		if listType != "" {
			l.SetTypeFilter(ctx, listType)
		}
		if listCategory != "" {
			l.SetCategoryFilter(ctx, listCategory)
		}
		if listPage > 1 {
			l.SetPage(ctx, listPage)
		}
		if !l.Loaded() {
			l.Refresh(ctx)
		}

		out := cmd.OutOrStdout()
		transactions := l.Transactions()
		if len(transactions) == 0 {
			fmt.Fprintln(out, "No transactions found.")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tDESCRIPTION\tCATEGORY\tTYPE\tAMOUNT")
		for _, t := range transactions {
			desc := t.Description
			if desc == "" {
				desc = "-"
			}
			sign := "+"
			if t.Type == core.Expense {
				sign = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s%s\n",
				t.ID, t.Date, desc, t.Category, t.Type, sign, t.Amount.Display())
		}
		w.Flush()
		fmt.Fprintf(out, "\nPage %d of %d\n", l.Page(), l.TotalPages())
		return nil
	},
}

var transactionsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new transaction",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := inputFromFlags()
		if err != nil {
			return err
		}
		l := view.NewTransactionList(client, currentUser, logger.WithComponent("transactions"), stdinConfirmer())
		if err := l.Save(cmd.Context(), "", in); err != nil {
			return saveError(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Transaction added.")
		return nil
	},
}

var transactionsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Replace the fields of an existing transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := inputFromFlags()
		if err != nil {
			return err
		}
		l := view.NewTransactionList(client, currentUser, logger.WithComponent("transactions"), stdinConfirmer())
		if err := l.Save(cmd.Context(), args[0], in); err != nil {
			return saveError(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Transaction updated.")
		return nil
	},
}

var transactionsRemoveCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete a transaction",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l := view.NewTransactionList(client, currentUser, logger.WithComponent("transactions"), stdinConfirmer())
		if err := l.Delete(cmd.Context(), args[0]); err != nil {
			return saveError(err)
		}
		return nil
	},
}

// inputFromFlags assembles the transaction payload from the shared
// mutation flags. The amount stays raw; validation happens in the
// coordinator before any network call.
func inputFromFlags() (core.Input, error) {
	in := core.Input{
		Amount:      txAmount,
		Type:        core.TransactionType(txType),
		Category:    txCategory,
		Description: txDescription,
	}
	if txDate != "" {
		date, err := core.ParseDate(txDate)
		if err != nil {
			return core.Input{}, err
		}
		in.Date = date
	}
	return in, nil
}

// saveError maps domain errors to messages with enough context to fix
// the input.
func saveError(err error) error {
	switch {
	case errors.Is(err, core.ErrInvalidAmount):
		return errors.New("invalid amount: must be a non-negative number")
	case errors.Is(err, core.ErrInvalidCategory):
		return fmt.Errorf("category %q is not valid for type %q (valid: %v)",
			txCategory, txType, core.CategoriesFor(core.TransactionType(txType)))
	case errors.Is(err, core.ErrReadOnly):
		return errors.New("your account is read-only and cannot modify transactions")
	}
	return err
}

func addMutationFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&txAmount, "amount", "", "transaction amount, e.g. 12.50")
	cmd.Flags().StringVar(&txType, "type", "expense", "income or expense")
	cmd.Flags().StringVar(&txCategory, "category", "", "category (see fintrack transactions categories)")
	cmd.Flags().StringVar(&txDescription, "description", "", "optional description")
	cmd.Flags().StringVar(&txDate, "date", "", "date as YYYY-MM-DD (defaults to today)")
}

var transactionsCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show the category vocabulary per type",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "income:  %v\n", core.CategoriesFor(core.Income))
		fmt.Fprintf(out, "expense: %v\n", core.CategoriesFor(core.Expense))
	},
}

func init() {
	transactionsListCmd.Flags().StringVar(&listSearch, "search", "", "substring filter")
	transactionsListCmd.Flags().StringVar(&listType, "type", "", "type filter: income or expense")
	transactionsListCmd.Flags().StringVar(&listCategory, "category", "", "category filter")
	transactionsListCmd.Flags().IntVar(&listPage, "page", 1, "page number")

	addMutationFlags(transactionsAddCmd)
	addMutationFlags(transactionsEditCmd)

	transactionsCmd.AddCommand(transactionsListCmd)
	transactionsCmd.AddCommand(transactionsAddCmd)
	transactionsCmd.AddCommand(transactionsEditCmd)
	transactionsCmd.AddCommand(transactionsRemoveCmd)
	transactionsCmd.AddCommand(transactionsCategoriesCmd)
}
