package command

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newDBCommand(s *session) *cobra.Command {
	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Database maintenance commands",
	}

	var confirmed bool
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop every table and recreate an empty schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return errors.New("reset not confirmed; pass --yes to erase all data")
			}
			if err := s.db.Reset(cmd.Context()); err != nil {
				return fmt.Errorf("failed to reset database: %w", err)
			}
			fmt.Fprintln(out(cmd), "✓ Database reset")
			return nil
		},
	}
	resetCmd.Flags().BoolVarP(&confirmed, "yes", "y", false, "confirm erasing all data")

	dbCmd.AddCommand(resetCmd)
	return dbCmd
}
