package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories bundles one repository per entity, all bound to the same
// connection or transaction.
type Repositories struct {
	Users    UserRepository
	Series   SeriesRepository
	Seasons  SeasonRepository
	Episodes EpisodeRepository
	Reviews  ReviewRepository
	Statuses StatusRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:    NewUserRepository(db),
		Series:   NewSeriesRepository(db),
		Seasons:  NewSeasonRepository(db),
		Episodes: NewEpisodeRepository(db),
		Reviews:  NewReviewRepository(db),
		Statuses: NewStatusRepository(db),
	}
}

// Transactor runs fn against repositories bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(tx Repositories) error) error
}

type gormTransactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) Transactor {
	return &gormTransactor{db: db}
}

func (t *gormTransactor) WithinTransaction(ctx context.Context, fn func(tx Repositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
