package repository

import (
	"context"
	"fmt"

	"github.com/EddieTunji/tv-series-tracker/internal/catalog/models"

	"gorm.io/gorm"
)

type EpisodeRepository interface {
	Create(ctx context.Context, episode *models.Episode) error
	CreateBatch(ctx context.Context, episodes []models.Episode) error
	GetByID(ctx context.Context, id int64) (*models.Episode, error)
	ListBySeason(ctx context.Context, seasonID int64) ([]models.Episode, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type episodeRepository struct {
	db *gorm.DB
}

func NewEpisodeRepository(db *gorm.DB) EpisodeRepository {
	return &episodeRepository{db: db}
}

func (r *episodeRepository) Create(ctx context.Context, episode *models.Episode) error {
	if err := r.db.WithContext(ctx).Create(episode).Error; err != nil {
		return writeErr("create episode", err, nil)
	}
	return nil
}

// CreateBatch inserts all episodes in a single statement.
func (r *episodeRepository) CreateBatch(ctx context.Context, episodes []models.Episode) error {
	if len(episodes) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&episodes).Error; err != nil {
		return writeErr("create episodes", err, nil)
	}
	return nil
}

func (r *episodeRepository) GetByID(ctx context.Context, id int64) (*models.Episode, error) {
	var episode models.Episode
	if err := r.db.WithContext(ctx).First(&episode, id).Error; err != nil {
		return nil, lookupErr("get episode", err)
	}
	return &episode, nil
}

func (r *episodeRepository) ListBySeason(ctx context.Context, seasonID int64) ([]models.Episode, error) {
	var episodes []models.Episode
	if err := r.db.WithContext(ctx).
		Where("season_id = ?", seasonID).
		Scopes(orderEpisodes).
		Find(&episodes).Error; err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	return episodes, nil
}

func (r *episodeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Episode{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("delete episode: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
