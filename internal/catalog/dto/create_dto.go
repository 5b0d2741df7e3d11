package dto

// NewSeries carries everything the series creation flow collects.
// Seasons are numbered from 1 in slice order.
type NewSeries struct {
	Title       string
	Genre       string
	Description string
	Seasons     []NewSeason
}

type NewSeason struct {
	Episodes []NewEpisode
}

type NewEpisode struct {
	Title         string
	EpisodeNumber int
	DurationMins  int
}
