package repository

import (
	"context"
	"fmt"

	"github.com/EddieTunji/tv-series-tracker/internal/catalog/models"

	"gorm.io/gorm"
)

type StatusRepository interface {
	Create(ctx context.Context, status *models.Status) error
	GetByID(ctx context.Context, id int64) (*models.Status, error)
	GetByUserAndSeries(ctx context.Context, userID, seriesID int64) (*models.Status, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Status, error)
	UpdateWatchStatus(ctx context.Context, status *models.Status, watchStatus string) error
	Delete(ctx context.Context, id int64) (bool, error)
	DeleteByUserAndSeries(ctx context.Context, userID, seriesID int64) (bool, error)
}

type statusRepository struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) StatusRepository {
	return &statusRepository{db: db}
}

// Create inserts a watchlist entry. A second row for the same (user,
// series) pair is refused by the unique index and reported as
// ErrDuplicateStatus.
func (r *statusRepository) Create(ctx context.Context, status *models.Status) error {
	if err := r.db.WithContext(ctx).Omit("User", "Series").Create(status).Error; err != nil {
		return writeErr("create status", err, ErrDuplicateStatus)
	}
	return nil
}

func (r *statusRepository) GetByID(ctx context.Context, id int64) (*models.Status, error) {
	var status models.Status
	if err := r.db.WithContext(ctx).First(&status, id).Error; err != nil {
		return nil, lookupErr("get status", err)
	}
	return &status, nil
}

func (r *statusRepository) GetByUserAndSeries(ctx context.Context, userID, seriesID int64) (*models.Status, error) {
	var status models.Status
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND series_id = ?", userID, seriesID).
		First(&status).Error; err != nil {
		return nil, lookupErr("get status", err)
	}
	return &status, nil
}

func (r *statusRepository) ListByUser(ctx context.Context, userID int64) ([]models.Status, error) {
	var list []models.Status
	if err := r.db.WithContext(ctx).
		Preload("Series").
		Where("user_id = ?", userID).
		Order("series_id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	return list, nil
}

// UpdateWatchStatus overwrites the stored status in place.
func (r *statusRepository) UpdateWatchStatus(ctx context.Context, status *models.Status, watchStatus string) error {
	if err := r.db.WithContext(ctx).
		Model(status).
		Update("watch_status", watchStatus).Error; err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	return nil
}

func (r *statusRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Status{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("delete status: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *statusRepository) DeleteByUserAndSeries(ctx context.Context, userID, seriesID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND series_id = ?", userID, seriesID).
		Delete(&models.Status{})
	if result.Error != nil {
		return false, fmt.Errorf("delete status: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
