package repository

import (
	"context"
	"fmt"

	"github.com/EddieTunji/tv-series-tracker/internal/catalog/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	ListBySeries(ctx context.Context, seriesID int64) ([]models.Review, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create inserts the review. Rating bounds are checked by the caller; the
// table CHECK constraint is the last line.
func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Omit("User").Create(review).Error; err != nil {
		return writeErr("create review", err, nil)
	}
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).Preload("User").First(&review, id).Error; err != nil {
		return nil, lookupErr("get review", err)
	}
	return &review, nil
}

func (r *reviewRepository) ListBySeries(ctx context.Context, seriesID int64) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("series_id = ?", seriesID).
		Preload("User").
		Order("id ASC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Review{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("delete review: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
