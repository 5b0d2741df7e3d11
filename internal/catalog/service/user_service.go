package service

import (
	"context"
	"errors"
	"strings"

	"github.com/EddieTunji/tv-series-tracker/internal/catalog/models"
	"github.com/EddieTunji/tv-series-tracker/internal/catalog/repository"
)

// SelectOrCreateUser returns the user with the given name, creating it on
// first use. The bool reports whether a new user was created.
func (s *trackerService) SelectOrCreateUser(ctx context.Context, username string) (*models.User, bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, false, ErrEmptyUsername
	}

	user, err := s.repos.Users.FindByUsername(ctx, username)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}

	user = &models.User{Username: username}
	if err := s.repos.Users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			// created between our lookup and insert
			existing, findErr := s.repos.Users.FindByUsername(ctx, username)
			if findErr != nil {
				return nil, false, findErr
			}
			return existing, false, nil
		}
		return nil, false, err
	}

	s.logger.Info("user created", "user_id", user.ID, "username", user.Username)
	return user, true, nil
}

// FindUser looks a user up by name without creating it.
func (s *trackerService) FindUser(ctx context.Context, username string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}
	user, err := s.repos.Users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *trackerService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.repos.Users.List(ctx)
}

// DeleteUser removes a user who owns no series. Their reviews and watchlist
// entries are removed with them.
func (s *trackerService) DeleteUser(ctx context.Context, username string) error {
	user, err := s.repos.Users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	owned, err := s.repos.Series.CountByOwner(ctx, user.ID)
	if err != nil {
		return err
	}
	if owned > 0 {
		return ErrUserOwnsSeries
	}

	deleted, err := s.repos.Users.Delete(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrStillReferenced) {
			return ErrUserOwnsSeries
		}
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}

	s.logger.Info("user deleted", "user_id", user.ID, "username", user.Username)
	return nil
}
