package repository

import (
	"context"
	"fmt"

	"github.com/EddieTunji/tv-series-tracker/internal/catalog/models"

	"gorm.io/gorm"
)

type SeriesRepository interface {
	Create(ctx context.Context, series *models.Series) error
	GetByID(ctx context.Context, id int64) (*models.Series, error)
	GetDetail(ctx context.Context, id int64) (*models.Series, error)
	List(ctx context.Context) ([]models.Series, error)
	ListByOwner(ctx context.Context, userID int64) ([]models.Series, error)
	CountByOwner(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type seriesRepository struct {
	db *gorm.DB
}

func NewSeriesRepository(db *gorm.DB) SeriesRepository {
	return &seriesRepository{db: db}
}

func (r *seriesRepository) Create(ctx context.Context, series *models.Series) error {
	if err := r.db.WithContext(ctx).Omit("Owner", "Seasons", "Reviews", "Statuses").Create(series).Error; err != nil {
		return writeErr("create series", err, nil)
	}
	// GORM populates series.ID and the timestamps
	return nil
}

func (r *seriesRepository) GetByID(ctx context.Context, id int64) (*models.Series, error) {
	var s models.Series
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, lookupErr("get series", err)
	}
	return &s, nil
}

// GetDetail loads the series with its owner, seasons ordered by number,
// each season's episodes ordered by number, and reviews with their authors.
func (r *seriesRepository) GetDetail(ctx context.Context, id int64) (*models.Series, error) {
	var s models.Series
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Seasons", orderSeasons).
		Preload("Seasons.Episodes", orderEpisodes).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Reviews.User").
		First(&s, id).Error
	if err != nil {
		return nil, lookupErr("get series detail", err)
	}
	return &s, nil
}

func (r *seriesRepository) List(ctx context.Context) ([]models.Series, error) {
	var list []models.Series
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	return list, nil
}

func (r *seriesRepository) ListByOwner(ctx context.Context, userID int64) ([]models.Series, error) {
	var list []models.Series
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list series by owner: %w", err)
	}
	return list, nil
}

func (r *seriesRepository) CountByOwner(ctx context.Context, userID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Series{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count series by owner: %w", err)
	}
	return count, nil
}

// Delete removes the series; seasons, episodes, reviews and statuses go
// with it through the ON DELETE CASCADE foreign keys.
func (r *seriesRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Series{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("delete series: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func orderSeasons(db *gorm.DB) *gorm.DB {
	return db.Order("season_number ASC").Order("id ASC")
}

func orderEpisodes(db *gorm.DB) *gorm.DB {
	return db.Order("episode_number ASC").Order("id ASC")
}
