package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EddieTunji/tv-series-tracker/internal/catalog/dto"
	"github.com/EddieTunji/tv-series-tracker/internal/catalog/models"
)

func newEpisodeCommand(s *session) *cobra.Command {
	episodeCmd := &cobra.Command{
		Use:   "episode",
		Short: "Add or delete episodes of series you own",
	}

	var (
		title    string
		number   int
		duration string
	)
	addCmd := &cobra.Command{
		Use:   "add [season-id]",
		Short: "Add an episode to a season",
		Args:  cobra.ExactArgs(1),
		RunE: s.withUser(func(cmd *cobra.Command, args []string, user *models.User) error {
			seasonID, err := parseID(args[0], "season")
			if err != nil {
				return err
			}

			episode, err := s.svc.AddEpisode(cmd.Context(), user, seasonID, dto.NewEpisode{
				Title:         title,
				EpisodeNumber: number,
				DurationMins:  parseDuration(duration, s.cfg.DefaultEpisodeDuration),
			})
			if err != nil {
				return fmt.Errorf("failed to add episode: %w", err)
			}
			fmt.Fprintf(out(cmd), "✓ Episode %d added (ID: %d, %d min)\n", episode.EpisodeNumber, episode.ID, episode.DurationMins)
			return nil
		}),
	}
	addCmd.Flags().StringVar(&title, "title", "", "episode title")
	addCmd.Flags().IntVar(&number, "number", 0, "episode number (required, positive)")
	addCmd.Flags().StringVar(&duration, "duration", "", "length in minutes (defaults to DEFAULT_EPISODE_DURATION)")

	deleteCmd := &cobra.Command{
		Use:   "delete [episode-id]",
		Short: "Delete an episode",
		Args:  cobra.ExactArgs(1),
		RunE: s.withUser(func(cmd *cobra.Command, args []string, user *models.User) error {
			episodeID, err := parseID(args[0], "episode")
			if err != nil {
				return err
			}
			if err := s.svc.DeleteEpisode(cmd.Context(), user, episodeID); err != nil {
				return fmt.Errorf("failed to delete episode: %w", err)
			}
			fmt.Fprintf(out(cmd), "✓ Episode %d deleted\n", episodeID)
			return nil
		}),
	}

	episodeCmd.AddCommand(addCmd, deleteCmd)
	return episodeCmd
}
