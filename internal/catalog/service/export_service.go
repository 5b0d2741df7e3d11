package service

import (
	"context"

	"github.com/EddieTunji/tv-series-tracker/internal/catalog/dto"
	"github.com/EddieTunji/tv-series-tracker/internal/catalog/models"
)

// ExportCatalog snapshots every series in detail, as seen by user, plus the
// user's watchlist.
func (s *trackerService) ExportCatalog(ctx context.Context, user *models.User) (*dto.CatalogExport, error) {
	summaries, err := s.ListSeries(ctx)
	if err != nil {
		return nil, err
	}

	export := &dto.CatalogExport{
		ExportedAt: s.now().UTC(),
		Username:   user.Username,
		Series:     make([]dto.SeriesDetail, 0, len(summaries)),
	}
	for _, summary := range summaries {
		detail, err := s.GetSeriesDetail(ctx, user, summary.ID)
		if err != nil {
			return nil, err
		}
		export.Series = append(export.Series, *detail)
	}

	export.Watchlist, err = s.ListWatchlist(ctx, user)
	if err != nil {
		return nil, err
	}
	return export, nil
}
