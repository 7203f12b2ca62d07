package model

import (
	"fmt"
	"time"
)

// TVShow is a catalog series.
type TVShow struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Genre       Genre      `json:"genre"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Poster      string     `json:"poster"`
	Rating      Rating     `json:"rating"`
}

// TVShowSummary is the listing projection of a show.
type TVShowSummary struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Genre     Genre     `json:"genre"`
	StartDate time.Time `json:"start_date"`
	Poster    string    `json:"poster"`
	Rating    Rating    `json:"rating"`
}

// Summary projects a show for listings.
func (s TVShow) Summary() TVShowSummary {
	return TVShowSummary{
		ID:        s.ID,
		Title:     s.Title,
		Genre:     s.Genre,
		StartDate: s.StartDate,
		Poster:    s.Poster,
		Rating:    s.Rating,
	}
}

// Season belongs to a show; Number is unique within the show.
type Season struct {
	ID           int64     `json:"id"`
	ShowID       int64     `json:"show_id"`
	Number       int       `json:"number"`
	Title        string    `json:"title"`
	AirDate      time.Time `json:"air_date"`
	EpisodeCount int       `json:"episode_count"`
	Rating       Rating    `json:"rating"`
}

// Label renders "Show - Season N".
func (s Season) Label(showTitle string) string {
	return fmt.Sprintf("%s - Season %d", showTitle, s.Number)
}

// Episode belongs to a season; Number is unique within the season.
type Episode struct {
	ID           int64         `json:"id"`
	SeasonID     int64         `json:"season_id"`
	SeasonNumber int           `json:"season_number"`
	Number       int           `json:"episode_number"`
	Title        string        `json:"title"`
	AirDate      time.Time     `json:"air_date"`
	Description  string        `json:"description"`
	Duration     time.Duration `json:"duration"`
	Rating       Rating        `json:"rating"`
}

// FullTitle renders "S01E02 - Title".
func (e Episode) FullTitle() string {
	return fmt.Sprintf("S%02dE%02d - %s", e.SeasonNumber, e.Number, e.Title)
}

// TVShowDetail is the full show page.
type TVShowDetail struct {
	TVShow
	Seasons []Season        `json:"seasons"`
	Similar []TVShowSummary `json:"similar_tv_shows"`
}

// EpisodeRating is one user score for an episode.
type EpisodeRating struct {
	ID        int64 `json:"id"`
	EpisodeID int64 `json:"episode_id"`
	Score     int   `json:"rating"`
}
