package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EddieTunji/tv-series-tracker/internal/catalog/models"
)

func newSeasonCommand(s *session) *cobra.Command {
	seasonCmd := &cobra.Command{
		Use:   "season",
		Short: "Add or delete seasons of series you own",
	}

	addCmd := &cobra.Command{
		Use:   "add [series-id] [number]",
		Short: "Add a season to a series",
		Args:  cobra.ExactArgs(2),
		RunE: s.withUser(func(cmd *cobra.Command, args []string, user *models.User) error {
			seriesID, err := parseID(args[0], "series")
			if err != nil {
				return err
			}
			number, err := parseNumber(args[1], "season number")
			if err != nil {
				return err
			}

			season, err := s.svc.AddSeason(cmd.Context(), user, seriesID, number)
			if err != nil {
				return fmt.Errorf("failed to add season: %w", err)
			}
			fmt.Fprintf(out(cmd), "✓ Season %d added to series %d (season ID: %d)\n", season.SeasonNumber, seriesID, season.ID)
			return nil
		}),
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [season-id]",
		Short: "Delete a season and its episodes",
		Args:  cobra.ExactArgs(1),
		RunE: s.withUser(func(cmd *cobra.Command, args []string, user *models.User) error {
			seasonID, err := parseID(args[0], "season")
			if err != nil {
				return err
			}
			if err := s.svc.DeleteSeason(cmd.Context(), user, seasonID); err != nil {
				return fmt.Errorf("failed to delete season: %w", err)
			}
			fmt.Fprintf(out(cmd), "✓ Season %d deleted\n", seasonID)
			return nil
		}),
	}

	seasonCmd.AddCommand(addCmd, deleteCmd)
	return seasonCmd
}
