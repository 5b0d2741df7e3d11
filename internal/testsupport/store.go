package testsupport

import (
	"testing"

	"github.com/EddieTunji/tv-series-tracker/database"
	"github.com/EddieTunji/tv-series-tracker/internal/catalog/models"
	"github.com/EddieTunji/tv-series-tracker/internal/config"
	"github.com/EddieTunji/tv-series-tracker/internal/logging"
)

// MustOpenDatabase opens a migrated database for tests and registers cleanup.
func MustOpenDatabase(t testing.TB, cfg *config.Config) *database.Database {
	t.Helper()

	if cfg == nil {
		cfg = NewConfig(t)
	}
	db, err := database.Connect(cfg, logging.Discard())
	if err != nil {
		t.Fatalf("database.Connect: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// NewUser inserts a user row directly.
func NewUser(t testing.TB, db *database.Database, username string) *models.User {
	t.Helper()

	user := &models.User{Username: username}
	if err := db.DB.Create(user).Error; err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	return user
}

// NewSeries inserts a series owned by owner with the given number of seasons,
// each holding episodesPerSeason episodes.
func NewSeries(t testing.TB, db *database.Database, owner *models.User, title string, seasons, episodesPerSeason int) *models.Series {
	t.Helper()

	genre := "Drama"
	series := &models.Series{Title: title, Genre: &genre}
	if owner != nil {
		ownerID := owner.ID
		series.UserID = &ownerID
	}
	if err := db.DB.Omit("Seasons", "Reviews", "Statuses", "Owner").Create(series).Error; err != nil {
		t.Fatalf("create series %q: %v", title, err)
	}
	for i := 1; i <= seasons; i++ {
		season := &models.Season{SeriesID: series.ID, SeasonNumber: i}
		if err := db.DB.Omit("Episodes").Create(season).Error; err != nil {
			t.Fatalf("create season %d: %v", i, err)
		}
		for j := 1; j <= episodesPerSeason; j++ {
			episode := &models.Episode{
				SeasonID:      season.ID,
				Title:         title,
				EpisodeNumber: j,
				DurationMins:  30,
			}
			if err := db.DB.Create(episode).Error; err != nil {
				t.Fatalf("create episode %d/%d: %v", i, j, err)
			}
		}
	}
	return series
}

// Count returns the number of rows in the table backing model.
func Count(t testing.TB, db *database.Database, model any) int64 {
	t.Helper()

	var n int64
	if err := db.DB.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
