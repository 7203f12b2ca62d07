package model

import "strings"

// PersonKind selects which credit table a person belongs to.
type PersonKind string

const (
	KindActor    PersonKind = "actor"
	KindDirector PersonKind = "director"
)

// Person is the shared shape of actors and directors.
type Person struct {
	ID        int64      `json:"id"`
	Kind      PersonKind `json:"kind"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	FullName  string     `json:"full_name"`
}

// Name returns the full name, deriving it from the parts when not loaded.
func (p Person) Name() string {
	if p.FullName != "" {
		return p.FullName
	}
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// PersonSummary is a person row in a listing with credit counts.
type PersonSummary struct {
	Person
	MovieCount   int `json:"movie_count"`
	EpisodeCount int `json:"tv_episode_count"`
}

// PersonDetail adds distinct title counts and the credited titles.
type PersonDetail struct {
	Person
	TotalMovies  int             `json:"total_movies"`
	TotalTVShows int             `json:"total_tv_shows"`
	Movies       []MovieSummary  `json:"movies"`
	TVShows      []TVShowSummary `json:"tv_shows"`
}
