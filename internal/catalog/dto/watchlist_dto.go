package dto

import (
	"time"

	"github.com/EddieTunji/tv-series-tracker/internal/catalog/models"
)

// WatchlistEntry is one series on a user's watchlist.
type WatchlistEntry struct {
	SeriesID    int64     `json:"series_id" yaml:"series_id"`
	Title       string    `json:"title" yaml:"title"`
	WatchStatus string    `json:"watch_status" yaml:"watch_status"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at"`
}

func FromModelToWatchlistEntry(s *models.Status) WatchlistEntry {
	entry := WatchlistEntry{
		SeriesID:    s.SeriesID,
		WatchStatus: s.WatchStatus,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.Series != nil {
		entry.Title = s.Series.Title
	}
	return entry
}

// CatalogExport is the document written by the export command.
type CatalogExport struct {
	ExportedAt time.Time        `json:"exported_at" yaml:"exported_at"`
	Username   string           `json:"username" yaml:"username"`
	Series     []SeriesDetail   `json:"series" yaml:"series"`
	Watchlist  []WatchlistEntry `json:"watchlist" yaml:"watchlist"`
}
