package repository

import (
	"context"

	"moviedb/internal/model"
)

// CreditTable names a title/person link table.
type CreditTable string

const (
	MovieActors      CreditTable = "movie_actors"
	MovieDirectors   CreditTable = "movie_directors"
	EpisodeActors    CreditTable = "episode_actors"
	EpisodeDirectors CreditTable = "episode_directors"
)

// CreditLink connects a title (movie or episode) to a person.
type CreditLink struct {
	TitleID  int64
	PersonID int64
}

// SeedRepository bulk-inserts generated catalog data. Insert methods return
// generated ids in input order.
type SeedRepository interface {
	InsertPeople(ctx context.Context, kind model.PersonKind, people []model.Person) ([]int64, error)
	InsertMovies(ctx context.Context, movies []model.Movie) ([]int64, error)
	InsertTVShows(ctx context.Context, shows []model.TVShow) ([]int64, error)
	InsertSeasons(ctx context.Context, seasons []model.Season) ([]int64, error)
	InsertEpisodes(ctx context.Context, episodes []model.Episode) ([]int64, error)
	LinkCredits(ctx context.Context, table CreditTable, links []CreditLink) error
	InsertMovieRatings(ctx context.Context, ratings []model.MovieRating) error
	InsertEpisodeRatings(ctx context.Context, ratings []model.EpisodeRating) error
}
