package repository

import (
	"context"
	"fmt"

	"github.com/EddieTunji/tv-series-tracker/internal/catalog/models"

	"gorm.io/gorm"
)

type SeasonRepository interface {
	Create(ctx context.Context, season *models.Season) error
	GetByID(ctx context.Context, id int64) (*models.Season, error)
	ListBySeries(ctx context.Context, seriesID int64) ([]models.Season, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type seasonRepository struct {
	db *gorm.DB
}

func NewSeasonRepository(db *gorm.DB) SeasonRepository {
	return &seasonRepository{db: db}
}

func (r *seasonRepository) Create(ctx context.Context, season *models.Season) error {
	if err := r.db.WithContext(ctx).Omit("Episodes").Create(season).Error; err != nil {
		return writeErr("create season", err, nil)
	}
	return nil
}

func (r *seasonRepository) GetByID(ctx context.Context, id int64) (*models.Season, error) {
	var season models.Season
	if err := r.db.WithContext(ctx).First(&season, id).Error; err != nil {
		return nil, lookupErr("get season", err)
	}
	return &season, nil
}

// ListBySeries returns the seasons ascending by number, episodes included
// and ascending by number as well.
func (r *seasonRepository) ListBySeries(ctx context.Context, seriesID int64) ([]models.Season, error) {
	var seasons []models.Season
	err := r.db.WithContext(ctx).
		Preload("Episodes", orderEpisodes).
		Where("series_id = ?", seriesID).
		Scopes(orderSeasons).
		Find(&seasons).Error
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return seasons, nil
}

// Delete removes the season and, by cascade, its episodes.
func (r *seasonRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Season{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("delete season: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
