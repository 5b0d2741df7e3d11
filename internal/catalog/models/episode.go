package models

import "time"

type Episode struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	SeasonID      int64     `json:"season_id" gorm:"not null;index"`
	Title         string    `json:"title"`
	EpisodeNumber int       `json:"episode_number"`
	DurationMins  int       `json:"duration_mins"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Episode) TableName() string {
	return "episodes"
}
