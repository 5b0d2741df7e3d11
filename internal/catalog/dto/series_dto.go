package dto

import (
	"github.com/EddieTunji/tv-series-tracker/internal/catalog/models"
)

// SeriesSummary is one row of the series listing.
type SeriesSummary struct {
	ID    int64  `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Genre string `json:"genre" yaml:"genre"`
}

// SeriesDetail is the full view of one series. Status is the requesting
// user's watch status, or empty when the series is not on their watchlist.
type SeriesDetail struct {
	ID          int64        `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Genre       string       `json:"genre" yaml:"genre"`
	Description string       `json:"description" yaml:"description,omitempty"`
	Owner       string       `json:"owner,omitempty" yaml:"owner,omitempty"`
	Seasons     []SeasonView `json:"seasons" yaml:"seasons"`
	Reviews     []ReviewView `json:"reviews" yaml:"reviews"`
	Status      string       `json:"status,omitempty" yaml:"status,omitempty"`
}

type SeasonView struct {
	ID           int64         `json:"id" yaml:"id"`
	SeasonNumber int           `json:"season_number" yaml:"season_number"`
	Episodes     []EpisodeView `json:"episodes" yaml:"episodes"`
}

type EpisodeView struct {
	ID            int64  `json:"id" yaml:"id"`
	EpisodeNumber int    `json:"episode_number" yaml:"episode_number"`
	Title         string `json:"title" yaml:"title"`
	DurationMins  int    `json:"duration_mins" yaml:"duration_mins"`
}

type ReviewView struct {
	ID       int64  `json:"id" yaml:"id"`
	Username string `json:"username" yaml:"username"`
	Rating   int    `json:"rating" yaml:"rating"`
	Content  string `json:"content" yaml:"content"`
}

// EpisodeCount totals the episodes across all seasons.
func (d *SeriesDetail) EpisodeCount() int {
	n := 0
	for _, s := range d.Seasons {
		n += len(s.Episodes)
	}
	return n
}

func FromModelToSeriesSummary(s *models.Series) SeriesSummary {
	return SeriesSummary{
		ID:    s.ID,
		Title: s.Title,
		Genre: deref(s.Genre),
	}
}

// FromModelToSeriesDetail converts a series loaded with its seasons,
// episodes and reviews. The model's ordering is kept.
func FromModelToSeriesDetail(s *models.Series, status *models.Status) *SeriesDetail {
	detail := &SeriesDetail{
		ID:          s.ID,
		Title:       s.Title,
		Genre:       deref(s.Genre),
		Description: deref(s.Description),
		Seasons:     make([]SeasonView, 0, len(s.Seasons)),
		Reviews:     make([]ReviewView, 0, len(s.Reviews)),
	}
	if s.Owner != nil {
		detail.Owner = s.Owner.Username
	}
	for i := range s.Seasons {
		detail.Seasons = append(detail.Seasons, FromModelToSeasonView(&s.Seasons[i]))
	}
	for i := range s.Reviews {
		detail.Reviews = append(detail.Reviews, FromModelToReviewView(&s.Reviews[i]))
	}
	if status != nil {
		detail.Status = status.WatchStatus
	}
	return detail
}

func FromModelToSeasonView(s *models.Season) SeasonView {
	view := SeasonView{
		ID:           s.ID,
		SeasonNumber: s.SeasonNumber,
		Episodes:     make([]EpisodeView, 0, len(s.Episodes)),
	}
	for _, ep := range s.Episodes {
		view.Episodes = append(view.Episodes, EpisodeView{
			ID:            ep.ID,
			EpisodeNumber: ep.EpisodeNumber,
			Title:         ep.Title,
			DurationMins:  ep.DurationMins,
		})
	}
	return view
}

func FromModelToReviewView(r *models.Review) ReviewView {
	view := ReviewView{
		ID:      r.ID,
		Rating:  r.Rating,
		Content: r.Content,
	}
	if r.User != nil {
		view.Username = r.User.Username
	}
	return view
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
