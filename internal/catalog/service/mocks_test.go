package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/EddieTunji/tv-series-tracker/internal/catalog/models"
	"github.com/EddieTunji/tv-series-tracker/internal/catalog/repository"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockSeriesRepository mocks the SeriesRepository interface
type MockSeriesRepository struct {
	mock.Mock
}

func (m *MockSeriesRepository) Create(ctx context.Context, series *models.Series) error {
	args := m.Called(ctx, series)
	return args.Error(0)
}

func (m *MockSeriesRepository) GetByID(ctx context.Context, id int64) (*models.Series, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Series), args.Error(1)
}

func (m *MockSeriesRepository) GetDetail(ctx context.Context, id int64) (*models.Series, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Series), args.Error(1)
}

func (m *MockSeriesRepository) List(ctx context.Context) ([]models.Series, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Series), args.Error(1)
}

func (m *MockSeriesRepository) ListByOwner(ctx context.Context, userID int64) ([]models.Series, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Series), args.Error(1)
}

func (m *MockSeriesRepository) CountByOwner(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSeriesRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockSeasonRepository mocks the SeasonRepository interface
type MockSeasonRepository struct {
	mock.Mock
}

func (m *MockSeasonRepository) Create(ctx context.Context, season *models.Season) error {
	args := m.Called(ctx, season)
	return args.Error(0)
}

func (m *MockSeasonRepository) GetByID(ctx context.Context, id int64) (*models.Season, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Season), args.Error(1)
}

func (m *MockSeasonRepository) ListBySeries(ctx context.Context, seriesID int64) ([]models.Season, error) {
	args := m.Called(ctx, seriesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Season), args.Error(1)
}

func (m *MockSeasonRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockEpisodeRepository mocks the EpisodeRepository interface
type MockEpisodeRepository struct {
	mock.Mock
}

func (m *MockEpisodeRepository) Create(ctx context.Context, episode *models.Episode) error {
	args := m.Called(ctx, episode)
	return args.Error(0)
}

func (m *MockEpisodeRepository) CreateBatch(ctx context.Context, episodes []models.Episode) error {
	args := m.Called(ctx, episodes)
	return args.Error(0)
}

func (m *MockEpisodeRepository) GetByID(ctx context.Context, id int64) (*models.Episode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Episode), args.Error(1)
}

func (m *MockEpisodeRepository) ListBySeason(ctx context.Context, seasonID int64) ([]models.Episode, error) {
	args := m.Called(ctx, seasonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Episode), args.Error(1)
}

func (m *MockEpisodeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockReviewRepository mocks the ReviewRepository interface
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) ListBySeries(ctx context.Context, seriesID int64) ([]models.Review, error) {
	args := m.Called(ctx, seriesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockStatusRepository mocks the StatusRepository interface
type MockStatusRepository struct {
	mock.Mock
}

func (m *MockStatusRepository) Create(ctx context.Context, status *models.Status) error {
	args := m.Called(ctx, status)
	return args.Error(0)
}

func (m *MockStatusRepository) GetByID(ctx context.Context, id int64) (*models.Status, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Status), args.Error(1)
}

func (m *MockStatusRepository) GetByUserAndSeries(ctx context.Context, userID, seriesID int64) (*models.Status, error) {
	args := m.Called(ctx, userID, seriesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Status), args.Error(1)
}

func (m *MockStatusRepository) ListByUser(ctx context.Context, userID int64) ([]models.Status, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Status), args.Error(1)
}

func (m *MockStatusRepository) UpdateWatchStatus(ctx context.Context, status *models.Status, watchStatus string) error {
	args := m.Called(ctx, status, watchStatus)
	return args.Error(0)
}

func (m *MockStatusRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStatusRepository) DeleteByUserAndSeries(ctx context.Context, userID, seriesID int64) (bool, error) {
	args := m.Called(ctx, userID, seriesID)
	return args.Bool(0), args.Error(1)
}

// passthroughTransactor runs fn against the same mocked repositories
// without a real transaction.
type passthroughTransactor struct {
	repos repository.Repositories
}

func (p passthroughTransactor) WithinTransaction(ctx context.Context, fn func(tx repository.Repositories) error) error {
	return fn(p.repos)
}

type mockRepos struct {
	users    *MockUserRepository
	series   *MockSeriesRepository
	seasons  *MockSeasonRepository
	episodes *MockEpisodeRepository
	reviews  *MockReviewRepository
	statuses *MockStatusRepository
}

func newMockRepos() *mockRepos {
	return &mockRepos{
		users:    new(MockUserRepository),
		series:   new(MockSeriesRepository),
		seasons:  new(MockSeasonRepository),
		episodes: new(MockEpisodeRepository),
		reviews:  new(MockReviewRepository),
		statuses: new(MockStatusRepository),
	}
}

func (m *mockRepos) repositories() repository.Repositories {
	return repository.Repositories{
		Users:    m.users,
		Series:   m.series,
		Seasons:  m.seasons,
		Episodes: m.episodes,
		Reviews:  m.reviews,
		Statuses: m.statuses,
	}
}

func (m *mockRepos) assertExpectations(t mock.TestingT) {
	m.users.AssertExpectations(t)
	m.series.AssertExpectations(t)
	m.seasons.AssertExpectations(t)
	m.episodes.AssertExpectations(t)
	m.reviews.AssertExpectations(t)
	m.statuses.AssertExpectations(t)
}

func newMockedService(strict bool) (*trackerService, *mockRepos) {
	m := newMockRepos()
	repos := m.repositories()
	svc := NewTrackerService(repos, passthroughTransactor{repos: repos}, Options{StrictWatchStatus: strict}, nil)
	return svc.(*trackerService), m
}
