package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"fintrack/internal/api"
	"fintrack/internal/config"
	"fintrack/internal/core"
	"fintrack/internal/log"
	"fintrack/internal/services"
)

// Wired once in the persistent pre-run and shared by all subcommands.
var (
	cfg         *config.Config
	logger      *log.Logger
	client      *api.Client
	currentUser core.User
	assumeYes   bool
)

var rootCmd = &cobra.Command{
	Use:   "fintrack",
	Short: "Track income and expense transactions",
	Long: `fintrack is a finance tracker client. It records, browses, filters and
summarizes income/expense transactions held in a remote store, and
offers an admin view for user management.

The signed-in identity comes from the environment (FINTRACK_USER_*);
a read-only identity gets a strictly non-mutating view.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load .env for local development; ignore errors elsewhere.
		_ = godotenv.Load()

		cfg = config.Load()
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger = log.New(log.ParseLevel(cfg.LogLevel), "fintrack")
		client = api.New(cfg.APIBaseURL)
		currentUser = cfg.CurrentUser()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "answer yes to confirmation prompts")
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(transactionsCmd)
	rootCmd.AddCommand(usersCmd)
}

// confirmer returns the confirmation callback for destructive actions:
// a terminal prompt, or always-yes when --yes was given.
func confirmer(in io.Reader, out io.Writer) services.ConfirmFunc {
	if assumeYes {
		return func(string) bool { return true }
	}
	reader := bufio.NewReader(in)
	return func(prompt string) bool {
		fmt.Fprintf(out, "%s [y/N]: ", prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}

func stdinConfirmer() services.ConfirmFunc {
	return confirmer(os.Stdin, os.Stdout)
}
