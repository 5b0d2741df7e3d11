package service

import (
	"context"
	"errors"

	"github.com/EddieTunji/tv-series-tracker/internal/catalog/dto"
	"github.com/EddieTunji/tv-series-tracker/internal/catalog/models"
	"github.com/EddieTunji/tv-series-tracker/internal/catalog/repository"
)

// AddToWatchlist puts the series on the user's watchlist as
// "Plan to Watch". A series already present is reported, never duplicated.
func (s *trackerService) AddToWatchlist(ctx context.Context, user *models.User, seriesID int64) (*models.Status, error) {
	if err := s.requireSeries(ctx, seriesID); err != nil {
		return nil, err
	}

	// Check if already in watchlist
	if _, err := s.repos.Statuses.GetByUserAndSeries(ctx, user.ID, seriesID); err == nil {
		return nil, ErrAlreadyInWatchlist
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	status := &models.Status{
		UserID:      user.ID,
		SeriesID:    seriesID,
		WatchStatus: models.WatchStatusPlanToWatch,
	}
	if err := s.repos.Statuses.Create(ctx, status); err != nil {
		if errors.Is(err, repository.ErrDuplicateStatus) {
			return nil, ErrAlreadyInWatchlist
		}
		return nil, err
	}
	return status, nil
}

// SetWatchStatus normalizes raw and writes it to the user's entry for the
// series, creating the entry when there is none.
func (s *trackerService) SetWatchStatus(ctx context.Context, user *models.User, seriesID int64, raw string) (*models.Status, error) {
	watchStatus, err := NormalizeWatchStatus(raw, s.opts.StrictWatchStatus)
	if err != nil {
		return nil, err
	}
	if err := s.requireSeries(ctx, seriesID); err != nil {
		return nil, err
	}

	var result *models.Status
	err = s.tx.WithinTransaction(ctx, func(tx repository.Repositories) error {
		existing, err := tx.Statuses.GetByUserAndSeries(ctx, user.ID, seriesID)
		switch {
		case err == nil:
			if err := tx.Statuses.UpdateWatchStatus(ctx, existing, watchStatus); err != nil {
				return err
			}
			existing.WatchStatus = watchStatus
			result = existing
			return nil
		case errors.Is(err, repository.ErrNotFound):
			created := &models.Status{UserID: user.ID, SeriesID: seriesID, WatchStatus: watchStatus}
			if err := tx.Statuses.Create(ctx, created); err != nil {
				return err
			}
			result = created
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("watch status set", "user_id", user.ID, "series_id", seriesID, "status", watchStatus)
	return result, nil
}

func (s *trackerService) RemoveFromWatchlist(ctx context.Context, user *models.User, seriesID int64) error {
	removed, err := s.repos.Statuses.DeleteByUserAndSeries(ctx, user.ID, seriesID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotInWatchlist
	}
	return nil
}

func (s *trackerService) ListWatchlist(ctx context.Context, user *models.User) ([]dto.WatchlistEntry, error) {
	statuses, err := s.repos.Statuses.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	entries := make([]dto.WatchlistEntry, 0, len(statuses))
	for i := range statuses {
		entries = append(entries, dto.FromModelToWatchlistEntry(&statuses[i]))
	}
	return entries, nil
}

func (s *trackerService) requireSeries(ctx context.Context, seriesID int64) error {
	if _, err := s.repos.Series.GetByID(ctx, seriesID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSeriesNotFound
		}
		return err
	}
	return nil
}
