package service

import (
	"errors"
	"fmt"

	"github.com/EddieTunji/tv-series-tracker/internal/catalog/models"
	"github.com/EddieTunji/tv-series-tracker/internal/catalog/repository"
)

var (
	ErrEmptyUsername  = errors.New("username cannot be empty")
	ErrNameInUse      = repository.ErrUsernameTaken
	ErrUserNotFound   = errors.New("user not found")
	ErrUserOwnsSeries = errors.New("user still owns series; delete them first")

	ErrSeriesNotFound  = errors.New("series not found")
	ErrSeasonNotFound  = errors.New("season not found")
	ErrEpisodeNotFound = errors.New("episode not found")
	ErrReviewNotFound  = errors.New("review not found")
	ErrNotOwner        = errors.New("you do not own this record")

	ErrEmptyTitle      = errors.New("title is required")
	ErrEmptyGenre      = errors.New("genre is required")
	ErrInvalidNumber   = errors.New("number must be a positive integer")
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
	ErrInvalidRating   = errors.New("rating must be between 1 and 10")
	ErrEmptyContent    = errors.New("review content cannot be empty")

	ErrInvalidWatchStatus = errors.New("invalid watch status")
	ErrAlreadyInWatchlist = errors.New("series already in watchlist")
	ErrNotInWatchlist     = errors.New("series not in watchlist")
)

// PartialCreateError reports a series creation that stopped after the
// series row, and possibly some seasons, were already committed. Series
// is the persisted row; it is not rolled back.
type PartialCreateError struct {
	Series           *models.Series
	SeasonsCreated   int
	SeasonsRequested int
	Err              error
}

func (e *PartialCreateError) Error() string {
	return fmt.Sprintf("series %q created with %d of %d seasons: %v",
		e.Series.Title, e.SeasonsCreated, e.SeasonsRequested, e.Err)
}

func (e *PartialCreateError) Unwrap() error {
	return e.Err
}
