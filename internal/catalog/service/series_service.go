package service

import (
	"context"
	"errors"
	"strings"

	"github.com/EddieTunji/tv-series-tracker/internal/catalog/dto"
	"github.com/EddieTunji/tv-series-tracker/internal/catalog/models"
	"github.com/EddieTunji/tv-series-tracker/internal/catalog/repository"
)

func (s *trackerService) ListSeries(ctx context.Context) ([]dto.SeriesSummary, error) {
	list, err := s.repos.Series.List(ctx)
	if err != nil {
		return nil, err
	}
	return toSummaries(list), nil
}

func (s *trackerService) ListOwnedSeries(ctx context.Context, user *models.User) ([]dto.SeriesSummary, error) {
	list, err := s.repos.Series.ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return toSummaries(list), nil
}

// GetSeriesDetail returns the series with ordered seasons and episodes, its
// reviews, and the watch status of user (who may be nil).
func (s *trackerService) GetSeriesDetail(ctx context.Context, user *models.User, seriesID int64) (*dto.SeriesDetail, error) {
	series, err := s.repos.Series.GetDetail(ctx, seriesID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSeriesNotFound
		}
		return nil, err
	}

	var status *models.Status
	if user != nil {
		status, err = s.repos.Statuses.GetByUserAndSeries(ctx, user.ID, seriesID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}
	return dto.FromModelToSeriesDetail(series, status), nil
}

// CreateSeries persists the series, then each season with its episodes in
// a transaction of its own. If a season fails the series and the seasons
// before it stay committed and a *PartialCreateError is returned.
func (s *trackerService) CreateSeries(ctx context.Context, user *models.User, in dto.NewSeries) (*models.Series, error) {
	title := strings.TrimSpace(in.Title)
	genre := strings.TrimSpace(in.Genre)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if genre == "" {
		return nil, ErrEmptyGenre
	}

	ownerID := user.ID
	series := &models.Series{
		Title:  title,
		Genre:  &genre,
		UserID: &ownerID,
	}
	if desc := strings.TrimSpace(in.Description); desc != "" {
		series.Description = &desc
	}
	if err := s.repos.Series.Create(ctx, series); err != nil {
		return nil, err
	}
	s.logger.Info("series created", "series_id", series.ID, "title", series.Title, "owner", user.Username)

	for i, newSeason := range in.Seasons {
		number := i + 1
		err := s.tx.WithinTransaction(ctx, func(tx repository.Repositories) error {
			season := &models.Season{SeriesID: series.ID, SeasonNumber: number}
			if err := tx.Seasons.Create(ctx, season); err != nil {
				return err
			}
			return tx.Episodes.CreateBatch(ctx, buildEpisodes(season.ID, newSeason.Episodes))
		})
		if err != nil {
			s.logger.Warn("series creation stopped early",
				"series_id", series.ID, "seasons_created", i, "seasons_requested", len(in.Seasons), "error", err)
			return series, &PartialCreateError{
				Series:           series,
				SeasonsCreated:   i,
				SeasonsRequested: len(in.Seasons),
				Err:              err,
			}
		}
	}
	return series, nil
}

// DeleteSeries removes a series the user owns, with everything under it.
func (s *trackerService) DeleteSeries(ctx context.Context, user *models.User, seriesID int64) error {
	if _, err := s.ownedSeries(ctx, user, seriesID); err != nil {
		return err
	}
	deleted, err := s.repos.Series.Delete(ctx, seriesID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSeriesNotFound
	}
	s.logger.Info("series deleted", "series_id", seriesID, "owner", user.Username)
	return nil
}

func (s *trackerService) AddSeason(ctx context.Context, user *models.User, seriesID int64, number int) (*models.Season, error) {
	if number <= 0 {
		return nil, ErrInvalidNumber
	}
	if _, err := s.ownedSeries(ctx, user, seriesID); err != nil {
		return nil, err
	}
	season := &models.Season{SeriesID: seriesID, SeasonNumber: number}
	if err := s.repos.Seasons.Create(ctx, season); err != nil {
		return nil, err
	}
	return season, nil
}

func (s *trackerService) DeleteSeason(ctx context.Context, user *models.User, seasonID int64) error {
	season, err := s.ownedSeason(ctx, user, seasonID)
	if err != nil {
		return err
	}
	deleted, err := s.repos.Seasons.Delete(ctx, season.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSeasonNotFound
	}
	return nil
}

func (s *trackerService) AddEpisode(ctx context.Context, user *models.User, seasonID int64, in dto.NewEpisode) (*models.Episode, error) {
	if in.EpisodeNumber <= 0 {
		return nil, ErrInvalidNumber
	}
	if in.DurationMins <= 0 {
		return nil, ErrInvalidDuration
	}
	if _, err := s.ownedSeason(ctx, user, seasonID); err != nil {
		return nil, err
	}
	episode := &models.Episode{
		SeasonID:      seasonID,
		Title:         strings.TrimSpace(in.Title),
		EpisodeNumber: in.EpisodeNumber,
		DurationMins:  in.DurationMins,
	}
	if err := s.repos.Episodes.Create(ctx, episode); err != nil {
		return nil, err
	}
	return episode, nil
}

func (s *trackerService) DeleteEpisode(ctx context.Context, user *models.User, episodeID int64) error {
	episode, err := s.repos.Episodes.GetByID(ctx, episodeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEpisodeNotFound
		}
		return err
	}
	if _, err := s.ownedSeason(ctx, user, episode.SeasonID); err != nil {
		return err
	}
	deleted, err := s.repos.Episodes.Delete(ctx, episodeID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEpisodeNotFound
	}
	return nil
}

func (s *trackerService) ownedSeries(ctx context.Context, user *models.User, seriesID int64) (*models.Series, error) {
	series, err := s.repos.Series.GetByID(ctx, seriesID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSeriesNotFound
		}
		return nil, err
	}
	if !series.OwnedBy(user.ID) {
		return nil, ErrNotOwner
	}
	return series, nil
}

func (s *trackerService) ownedSeason(ctx context.Context, user *models.User, seasonID int64) (*models.Season, error) {
	season, err := s.repos.Seasons.GetByID(ctx, seasonID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSeasonNotFound
		}
		return nil, err
	}
	if _, err := s.ownedSeries(ctx, user, season.SeriesID); err != nil {
		return nil, err
	}
	return season, nil
}

func buildEpisodes(seasonID int64, in []dto.NewEpisode) []models.Episode {
	episodes := make([]models.Episode, 0, len(in))
	for j, ep := range in {
		number := ep.EpisodeNumber
		if number <= 0 {
			number = j + 1
		}
		episodes = append(episodes, models.Episode{
			SeasonID:      seasonID,
			Title:         strings.TrimSpace(ep.Title),
			EpisodeNumber: number,
			DurationMins:  ep.DurationMins,
		})
	}
	return episodes
}

func toSummaries(list []models.Series) []dto.SeriesSummary {
	out := make([]dto.SeriesSummary, 0, len(list))
	for i := range list {
		out = append(out, dto.FromModelToSeriesSummary(&list[i]))
	}
	return out
}
