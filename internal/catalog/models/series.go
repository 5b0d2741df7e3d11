package models

import "time"

// Series is a tracked show. Deleting it removes its seasons (and their
// episodes), reviews and watchlist statuses. Its owner cannot be deleted
// while the series exists.
type Series struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"not null"`
	Genre       *string   `json:"genre,omitempty"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	UserID      *int64    `json:"user_id,omitempty" gorm:"index"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Owner    *User    `json:"owner,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:NO ACTION;"`
	Seasons  []Season `json:"seasons,omitempty" gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE;"`
	Reviews  []Review `json:"reviews,omitempty" gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE;"`
	Statuses []Status `json:"-" gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE;"`
}

func (Series) TableName() string {
	return "series"
}

// OwnedBy reports whether userID created the series.
func (s *Series) OwnedBy(userID int64) bool {
	return s.UserID != nil && *s.UserID == userID
}
