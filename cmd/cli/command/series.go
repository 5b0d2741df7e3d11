package command

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EddieTunji/tv-series-tracker/internal/catalog/dto"
	"github.com/EddieTunji/tv-series-tracker/internal/catalog/models"
	"github.com/EddieTunji/tv-series-tracker/internal/catalog/service"
)

var errNotConfirmed = errors.New("deletion not confirmed; pass --yes")

func newSeriesCommand(s *session) *cobra.Command {
	seriesCmd := &cobra.Command{
		Use:   "series",
		Short: "Series management commands",
		Long:  `Browse the catalog, create series with their seasons and episodes, and delete series you own`,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every series in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := s.svc.ListSeries(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list series: %w", err)
			}
			printSeriesList(cmd, list, "No series in the catalog yet.")
			return nil
		},
	}

	mineCmd := &cobra.Command{
		Use:   "mine",
		Short: "List the series you created",
		Args:  cobra.NoArgs,
		RunE: s.withUser(func(cmd *cobra.Command, args []string, user *models.User) error {
			list, err := s.svc.ListOwnedSeries(cmd.Context(), user)
			if err != nil {
				return fmt.Errorf("failed to list series: %w", err)
			}
			printSeriesList(cmd, list, "You have not created any series.")
			return nil
		}),
	}

	showCmd := &cobra.Command{
		Use:   "show [series-id]",
		Short: "Show a series with its seasons, episodes and reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seriesID, err := parseID(args[0], "series")
			if err != nil {
				return err
			}
			// the watch status line needs a user, the rest does not
			user, err := s.existingUser(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to look up user %q: %w", s.username, err)
			}
			detail, err := s.svc.GetSeriesDetail(cmd.Context(), user, seriesID)
			if err != nil {
				return fmt.Errorf("failed to get series: %w", err)
			}
			printSeriesDetail(cmd, detail)
			return nil
		},
	}

	var (
		title       string
		genre       string
		description string
		seasons     []int
		duration    string
	)
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a series with its seasons and episodes",
		Long: `Create a series owned by the session user.
Each --season flag adds one season holding the given number of episodes,
in order. For example --season 10 --season 8 creates season 1 with 10
episodes and season 2 with 8.`,
		Args: cobra.NoArgs,
		RunE: s.withUser(func(cmd *cobra.Command, args []string, user *models.User) error {
			minutes := parseDuration(duration, s.cfg.DefaultEpisodeDuration)
			in := dto.NewSeries{
				Title:       title,
				Genre:       genre,
				Description: description,
				Seasons:     make([]dto.NewSeason, 0, len(seasons)),
			}
			for i, count := range seasons {
				if count < 0 {
					return fmt.Errorf("season %d: episode count cannot be negative", i+1)
				}
				season := dto.NewSeason{Episodes: make([]dto.NewEpisode, 0, count)}
				for j := 1; j <= count; j++ {
					season.Episodes = append(season.Episodes, dto.NewEpisode{
						Title:         fmt.Sprintf("Episode %d", j),
						EpisodeNumber: j,
						DurationMins:  minutes,
					})
				}
				in.Seasons = append(in.Seasons, season)
			}

			series, err := s.svc.CreateSeries(cmd.Context(), user, in)
			var partial *service.PartialCreateError
			if errors.As(err, &partial) {
				fmt.Fprintf(out(cmd), "⚠ Series %q (ID: %d) was saved with %d of %d seasons\n",
					partial.Series.Title, partial.Series.ID, partial.SeasonsCreated, partial.SeasonsRequested)
				return fmt.Errorf("failed to create remaining seasons: %w", partial.Err)
			}
			if err != nil {
				return fmt.Errorf("failed to create series: %w", err)
			}

			fmt.Fprintln(out(cmd), "✓ Series created successfully!")
			fmt.Fprintf(out(cmd), "ID: %d\n", series.ID)
			fmt.Fprintf(out(cmd), "Title: %s\n", series.Title)
			fmt.Fprintf(out(cmd), "Seasons: %d\n", len(in.Seasons))
			return nil
		}),
	}
	createCmd.Flags().StringVar(&title, "title", "", "series title (required)")
	createCmd.Flags().StringVar(&genre, "genre", "", "series genre (required)")
	createCmd.Flags().StringVar(&description, "description", "", "optional description")
	createCmd.Flags().IntSliceVar(&seasons, "season", nil, "episode count of the next season (repeatable)")
	createCmd.Flags().StringVar(&duration, "duration", "", "episode length in minutes (defaults to DEFAULT_EPISODE_DURATION)")

	var confirmed bool
	deleteCmd := &cobra.Command{
		Use:   "delete [series-id]",
		Short: "Delete a series you own, with everything under it",
		Args:  cobra.ExactArgs(1),
		RunE: s.withUser(func(cmd *cobra.Command, args []string, user *models.User) error {
			seriesID, err := parseID(args[0], "series")
			if err != nil {
				return err
			}
			if !confirmed {
				return errNotConfirmed
			}
			if err := s.svc.DeleteSeries(cmd.Context(), user, seriesID); err != nil {
				return fmt.Errorf("failed to delete series: %w", err)
			}
			fmt.Fprintf(out(cmd), "✓ Series %d deleted with its seasons, episodes, reviews and watchlist entries\n", seriesID)
			return nil
		}),
	}
	deleteCmd.Flags().BoolVarP(&confirmed, "yes", "y", false, "confirm the deletion")

	seriesCmd.AddCommand(listCmd, mineCmd, showCmd, createCmd, deleteCmd)
	return seriesCmd
}

func printSeriesList(cmd *cobra.Command, list []dto.SeriesSummary, empty string) {
	w := out(cmd)
	if len(list) == 0 {
		fmt.Fprintln(w, empty)
		return
	}
	rows := make([][]string, 0, len(list))
	for _, s := range list {
		rows = append(rows, []string{formatID(s.ID), s.Title, orDash(s.Genre)})
	}
	fmt.Fprintln(w, renderTable(w, []string{"ID", "Title", "Genre"}, rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft}))
}

func printSeriesDetail(cmd *cobra.Command, d *dto.SeriesDetail) {
	w := out(cmd)
	fmt.Fprintf(w, "%s (ID: %d)\n", d.Title, d.ID)
	fmt.Fprintf(w, "Genre: %s\n", orDash(d.Genre))
	if d.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", d.Description)
	}
	fmt.Fprintf(w, "Created by: %s\n", orDash(d.Owner))
	if d.Status != "" {
		fmt.Fprintf(w, "Your status: %s\n", d.Status)
	}
	fmt.Fprintf(w, "Seasons: %d, Episodes: %d\n", len(d.Seasons), d.EpisodeCount())

	if len(d.Seasons) > 0 {
		rows := make([][]string, 0, d.EpisodeCount())
		for _, season := range d.Seasons {
			if len(season.Episodes) == 0 {
				rows = append(rows, []string{seasonLabel(season), "-", "(no episodes)", "-"})
				continue
			}
			for _, ep := range season.Episodes {
				rows = append(rows, []string{
					seasonLabel(season),
					fmt.Sprintf("E%d (#%d)", ep.EpisodeNumber, ep.ID),
					orDash(ep.Title),
					fmt.Sprintf("%d min", ep.DurationMins),
				})
			}
		}
		fmt.Fprintln(w, renderTable(w, []string{"Season", "Episode", "Title", "Length"}, rows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight}))
	}

	if len(d.Reviews) == 0 {
		fmt.Fprintln(w, "No reviews yet.")
		return
	}
	fmt.Fprintf(w, "Reviews (%d):\n", len(d.Reviews))
	for _, r := range d.Reviews {
		fmt.Fprintf(w, "  #%d %s rated %d/10: %s\n", r.ID, orDash(r.Username), r.Rating, r.Content)
	}
}

// seasonLabel shows the season number with the ID the season commands take.
func seasonLabel(season dto.SeasonView) string {
	return fmt.Sprintf("S%d (#%d)", season.SeasonNumber, season.ID)
}
