package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/EddieTunji/tv-series-tracker/internal/catalog/models"
)

func newWatchlistCommand(s *session) *cobra.Command {
	watchlistCmd := &cobra.Command{
		Use:   "watchlist",
		Short: "Manage your watchlist",
		Long: `Add, remove, and list series on your watchlist and set their watch status.
Known statuses: ` + strings.Join(models.WatchStatuses(), ", "),
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the series on your watchlist",
		Args:  cobra.NoArgs,
		RunE: s.withUser(func(cmd *cobra.Command, args []string, user *models.User) error {
			entries, err := s.svc.ListWatchlist(cmd.Context(), user)
			if err != nil {
				return fmt.Errorf("failed to fetch watchlist: %w", err)
			}
			w := out(cmd)
			if len(entries) == 0 {
				fmt.Fprintln(w, "Your watchlist is empty")
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{formatID(e.SeriesID), e.Title, e.WatchStatus, e.UpdatedAt.Format("2006-01-02 15:04")})
			}
			fmt.Fprintf(w, "Your Watchlist (%d series)\n", len(entries))
			fmt.Fprintln(w, renderTable(w, []string{"Series", "Title", "Status", "Updated"}, rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft}))
			return nil
		}),
	}

	addCmd := &cobra.Command{
		Use:   "add [series-id]",
		Short: "Add a series to your watchlist as Plan to Watch",
		Args:  cobra.ExactArgs(1),
		RunE: s.withUser(func(cmd *cobra.Command, args []string, user *models.User) error {
			seriesID, err := parseID(args[0], "series")
			if err != nil {
				return err
			}
			status, err := s.svc.AddToWatchlist(cmd.Context(), user, seriesID)
			if err != nil {
				return fmt.Errorf("failed to add series to watchlist: %w", err)
			}
			fmt.Fprintf(out(cmd), "✓ Series %d added to your watchlist (%s)\n", seriesID, status.WatchStatus)
			return nil
		}),
	}

	removeCmd := &cobra.Command{
		Use:   "remove [series-id]",
		Short: "Remove a series from your watchlist",
		Args:  cobra.ExactArgs(1),
		RunE: s.withUser(func(cmd *cobra.Command, args []string, user *models.User) error {
			seriesID, err := parseID(args[0], "series")
			if err != nil {
				return err
			}
			if err := s.svc.RemoveFromWatchlist(cmd.Context(), user, seriesID); err != nil {
				return fmt.Errorf("failed to remove series from watchlist: %w", err)
			}
			fmt.Fprintf(out(cmd), "✓ Series %d removed from your watchlist\n", seriesID)
			return nil
		}),
	}

	statusCmd := &cobra.Command{
		Use:   "status [series-id] [status...]",
		Short: "Set your watch status for a series",
		Args:  cobra.MinimumNArgs(2),
		RunE: s.withUser(func(cmd *cobra.Command, args []string, user *models.User) error {
			seriesID, err := parseID(args[0], "series")
			if err != nil {
				return err
			}
			status, err := s.svc.SetWatchStatus(cmd.Context(), user, seriesID, strings.Join(args[1:], " "))
			if err != nil {
				return fmt.Errorf("failed to update watch status: %w", err)
			}
			fmt.Fprintf(out(cmd), "✓ Series %d is now %s\n", seriesID, status.WatchStatus)
			return nil
		}),
	}

	watchlistCmd.AddCommand(listCmd, addCmd, removeCmd, statusCmd)
	return watchlistCmd
}
