package models

import "time"

// Canonical watch statuses.
const (
	WatchStatusWatching    = "Watching"
	WatchStatusCompleted   = "Completed"
	WatchStatusDropped     = "Dropped"
	WatchStatusPlanToWatch = "Plan to Watch"
)

// WatchStatuses lists the canonical statuses in display order.
func WatchStatuses() []string {
	return []string{WatchStatusWatching, WatchStatusCompleted, WatchStatusDropped, WatchStatusPlanToWatch}
}

// Status is a user's watchlist entry for one series. There is at most one
// row per (user, series).
type Status struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64     `gorm:"not null;uniqueIndex:idx_statuses_user_series" json:"user_id"`
	SeriesID    int64     `gorm:"not null;uniqueIndex:idx_statuses_user_series" json:"series_id"`
	WatchStatus string    `gorm:"not null" json:"watch_status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Series *Series `gorm:"foreignKey:SeriesID" json:"series,omitempty"`
}

func (Status) TableName() string {
	return "statuses"
}
