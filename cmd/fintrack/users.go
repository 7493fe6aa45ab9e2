package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fintrack/internal/core"
	"fintrack/internal/view"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts (admin only)",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all user accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		u := view.NewUsers(client, currentUser, logger.WithComponent("users"), stdinConfirmer())
		if !u.Authorized() {
			return errors.New("access denied: you don't have permission to view this page")
		}
		u.Refresh(cmd.Context())

		out := cmd.OutOrStdout()
		users := u.Users()
		if len(users) == 0 {
			fmt.Fprintln(out, "No users found.")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE")
		for _, usr := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", usr.ID, usr.Name, usr.Email, usr.Role)
		}
		w.Flush()

		counts := u.RoleCounts()
		fmt.Fprintf(out, "\nAdministrators: %d  Regular Users: %d  Read-only Users: %d\n",
			counts[core.RoleAdmin], counts[core.RoleUser], counts[core.RoleReadOnly])
		return nil
	},
}

var usersRemoveCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete a user account",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u := view.NewUsers(client, currentUser, logger.WithComponent("users"), stdinConfirmer())
		err := u.Delete(cmd.Context(), args[0])
		switch {
		case errors.Is(err, core.ErrNotAdmin):
			return errors.New("access denied: user management requires the admin role")
		case errors.Is(err, core.ErrSelfDelete):
			return errors.New("you cannot delete your own account")
		}
		return err
	},
}

func init() {
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersRemoveCmd)
}
