package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/EddieTunji/tv-series-tracker/internal/catalog/models"
)

func newReviewCommand(s *session) *cobra.Command {
	reviewCmd := &cobra.Command{
		Use:   "review",
		Short: "Review management commands",
		Long:  `Rate a series from 1 to 10 with a written review, or delete one of your reviews`,
	}

	addCmd := &cobra.Command{
		Use:   "add [series-id] [rating] [content...]",
		Short: "Review a series (rating 1-10)",
		Args:  cobra.MinimumNArgs(3),
		RunE: s.withUser(func(cmd *cobra.Command, args []string, user *models.User) error {
			seriesID, err := parseID(args[0], "series")
			if err != nil {
				return err
			}
			rating, err := parseNumber(args[1], "rating")
			if err != nil {
				return err
			}

			review, err := s.svc.RecordReview(cmd.Context(), user, seriesID, rating, strings.Join(args[2:], " "))
			if err != nil {
				return fmt.Errorf("failed to review series: %w", err)
			}
			fmt.Fprintln(out(cmd), "✓ Review submitted successfully!")
			fmt.Fprintf(out(cmd), "Review ID: %d\n", review.ID)
			fmt.Fprintf(out(cmd), "Your Rating: %d/10\n", review.Rating)
			return nil
		}),
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [review-id]",
		Short: "Delete one of your reviews",
		Args:  cobra.ExactArgs(1),
		RunE: s.withUser(func(cmd *cobra.Command, args []string, user *models.User) error {
			reviewID, err := parseID(args[0], "review")
			if err != nil {
				return err
			}
			if err := s.svc.DeleteReview(cmd.Context(), user, reviewID); err != nil {
				return fmt.Errorf("failed to delete review: %w", err)
			}
			fmt.Fprintf(out(cmd), "✓ Review %d deleted\n", reviewID)
			return nil
		}),
	}

	reviewCmd.AddCommand(addCmd, deleteCmd)
	return reviewCmd
}
