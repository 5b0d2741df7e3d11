package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/EddieTunji/tv-series-tracker/internal/catalog/dto"
	"github.com/EddieTunji/tv-series-tracker/internal/catalog/models"
	"github.com/EddieTunji/tv-series-tracker/internal/catalog/repository"
)

// TrackerService is the contract the command line (or any other front end)
// drives. Callers pass the session user explicitly.
type TrackerService interface {
	SelectOrCreateUser(ctx context.Context, username string) (*models.User, bool, error)
	FindUser(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, username string) error

	ListSeries(ctx context.Context) ([]dto.SeriesSummary, error)
	ListOwnedSeries(ctx context.Context, user *models.User) ([]dto.SeriesSummary, error)
	GetSeriesDetail(ctx context.Context, user *models.User, seriesID int64) (*dto.SeriesDetail, error)
	CreateSeries(ctx context.Context, user *models.User, in dto.NewSeries) (*models.Series, error)
	DeleteSeries(ctx context.Context, user *models.User, seriesID int64) error

	AddSeason(ctx context.Context, user *models.User, seriesID int64, number int) (*models.Season, error)
	DeleteSeason(ctx context.Context, user *models.User, seasonID int64) error
	AddEpisode(ctx context.Context, user *models.User, seasonID int64, in dto.NewEpisode) (*models.Episode, error)
	DeleteEpisode(ctx context.Context, user *models.User, episodeID int64) error

	RecordReview(ctx context.Context, user *models.User, seriesID int64, rating int, content string) (*models.Review, error)
	DeleteReview(ctx context.Context, user *models.User, reviewID int64) error

	SetWatchStatus(ctx context.Context, user *models.User, seriesID int64, status string) (*models.Status, error)
	AddToWatchlist(ctx context.Context, user *models.User, seriesID int64) (*models.Status, error)
	RemoveFromWatchlist(ctx context.Context, user *models.User, seriesID int64) error
	ListWatchlist(ctx context.Context, user *models.User) ([]dto.WatchlistEntry, error)

	ExportCatalog(ctx context.Context, user *models.User) (*dto.CatalogExport, error)
}

// Options tunes service behavior.
type Options struct {
	// StrictWatchStatus rejects statuses outside the canonical set.
	StrictWatchStatus bool
}

type trackerService struct {
	repos  repository.Repositories
	tx     repository.Transactor
	opts   Options
	logger *slog.Logger
	now    func() time.Time
}

func NewTrackerService(repos repository.Repositories, tx repository.Transactor, opts Options, logger *slog.Logger) TrackerService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &trackerService{
		repos:  repos,
		tx:     tx,
		opts:   opts,
		logger: logger,
		now:    time.Now,
	}
}
