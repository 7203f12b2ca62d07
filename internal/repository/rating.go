package repository

import (
	"context"

	"moviedb/internal/model"
)

// RatingRepository stores user scores. Unknown titles yield sql.ErrNoRows.
type RatingRepository interface {
	AddMovieRating(ctx context.Context, movieID int64, score int) (*model.MovieRating, error)
	AddEpisodeRating(ctx context.Context, episodeID int64, score int) (*model.EpisodeRating, error)
}
