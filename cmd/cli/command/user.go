package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUserCommand(s *session) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "User management commands",
		Long:  `Select or create a user, list users, and delete users who own no series`,
	}

	loginCmd := &cobra.Command{
		Use:   "login [username]",
		Short: "Select a user, creating it if it does not exist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, created, err := s.svc.SelectOrCreateUser(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to select user: %w", err)
			}
			if created {
				fmt.Fprintf(out(cmd), "✓ Created user %s (ID: %d)\n", user.Username, user.ID)
			} else {
				fmt.Fprintf(out(cmd), "Welcome back, %s!\n", user.Username)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := s.svc.ListUsers(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}
			if len(users) == 0 {
				fmt.Fprintln(out(cmd), "No users yet.")
				return nil
			}
			rows := make([][]string, 0, len(users))
			for _, u := range users {
				rows = append(rows, []string{formatID(u.ID), u.Username, u.CreatedAt.Format("2006-01-02")})
			}
			fmt.Fprintln(out(cmd), renderTable(out(cmd), []string{"ID", "Username", "Joined"}, rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft}))
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [username]",
		Short: "Delete a user together with their reviews and watchlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.svc.DeleteUser(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete user: %w", err)
			}
			fmt.Fprintf(out(cmd), "✓ User %s deleted\n", args[0])
			return nil
		},
	}

	userCmd.AddCommand(loginCmd, listCmd, deleteCmd)
	return userCmd
}
