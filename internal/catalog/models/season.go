package models

import "time"

type Season struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	SeriesID     int64     `json:"series_id" gorm:"not null;index:idx_seasons_series_number,priority:1"`
	SeasonNumber int       `json:"season_number" gorm:"not null;index:idx_seasons_series_number,priority:2"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Episodes []Episode `json:"episodes,omitempty" gorm:"foreignKey:SeasonID;constraint:OnDelete:CASCADE;"`
}

func (Season) TableName() string {
	return "seasons"
}
