package model

import "time"

// Movie is a catalog movie with its aggregated rating.
type Movie struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Genre       Genre         `json:"genre"`
	ReleaseDate time.Time     `json:"release_date"`
	Duration    time.Duration `json:"duration"`
	Poster      string        `json:"poster"`
	Rating      Rating        `json:"rating"`
}

// MovieSummary is the listing projection of a movie.
type MovieSummary struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Genre       Genre     `json:"genre"`
	ReleaseDate time.Time `json:"release_date"`
	Poster      string    `json:"poster"`
	Rating      Rating    `json:"rating"`
}

// Summary projects a movie for listings.
func (m Movie) Summary() MovieSummary {
	return MovieSummary{
		ID:          m.ID,
		Title:       m.Title,
		Genre:       m.Genre,
		ReleaseDate: m.ReleaseDate,
		Poster:      m.Poster,
		Rating:      m.Rating,
	}
}

// Credits holds the cast and crew of a single title.
type Credits struct {
	Actors    []Person `json:"actors"`
	Directors []Person `json:"directors"`
}

// MovieDetail is the full movie page.
type MovieDetail struct {
	Movie
	Credits
	Similar []MovieSummary `json:"similar_movies"`
}

// MovieRating is one user score for a movie.
type MovieRating struct {
	ID      int64 `json:"id"`
	MovieID int64 `json:"movie_id"`
	Score   int   `json:"rating"`
}
