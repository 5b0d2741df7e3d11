package service

import (
	"context"
	"errors"
	"strings"

	"github.com/EddieTunji/tv-series-tracker/internal/catalog/models"
	"github.com/EddieTunji/tv-series-tracker/internal/catalog/repository"
)

const (
	MinRating = 1
	MaxRating = 10
)

// RecordReview validates and stores a review by user. Ratings outside
// [MinRating, MaxRating] never reach the store.
func (s *trackerService) RecordReview(ctx context.Context, user *models.User, seriesID int64, rating int, content string) (*models.Review, error) {
	if rating < MinRating || rating > MaxRating {
		return nil, ErrInvalidRating
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	// Check if series exists
	if _, err := s.repos.Series.GetByID(ctx, seriesID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSeriesNotFound
		}
		return nil, err
	}

	review := &models.Review{
		UserID:   user.ID,
		SeriesID: seriesID,
		Rating:   rating,
		Content:  content,
	}
	if err := s.repos.Reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	review.User = user

	s.logger.Info("review recorded", "review_id", review.ID, "series_id", seriesID, "rating", rating)
	return review, nil
}

// DeleteReview removes a review; only its author may do so.
func (s *trackerService) DeleteReview(ctx context.Context, user *models.User, reviewID int64) error {
	review, err := s.repos.Reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	if review.UserID != user.ID {
		return ErrNotOwner
	}
	deleted, err := s.repos.Reviews.Delete(ctx, reviewID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrReviewNotFound
	}
	return nil
}
