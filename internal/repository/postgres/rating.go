package postgres

import (
	"context"

	"moviedb/internal/model"
	"moviedb/internal/repository"
)

// RatingPostgres is a PostgreSQL implementation of repository.RatingRepository.
// Inserts select the parent row so an unknown title yields sql.ErrNoRows
// instead of a foreign-key error.
type RatingPostgres struct {
	db DBTX
}

// NewRatingPostgres creates a new RatingPostgres repository.
func NewRatingPostgres(db DBTX) *RatingPostgres {
	return &RatingPostgres{db: db}
}

var _ repository.RatingRepository = (*RatingPostgres)(nil)

func (r *RatingPostgres) AddMovieRating(ctx context.Context, movieID int64, score int) (*model.MovieRating, error) {
	const q = `
		INSERT INTO movie_ratings (movie_id, rating)
		SELECT id, $2::smallint FROM movies WHERE id = $1
		RETURNING id, movie_id, rating
	`
	var out model.MovieRating
	if err := r.db.QueryRowContext(ctx, q, movieID, score).Scan(&out.ID, &out.MovieID, &out.Score); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RatingPostgres) AddEpisodeRating(ctx context.Context, episodeID int64, score int) (*model.EpisodeRating, error) {
	const q = `
		INSERT INTO episode_ratings (episode_id, rating)
		SELECT id, $2::smallint FROM episodes WHERE id = $1
		RETURNING id, episode_id, rating
	`
	var out model.EpisodeRating
	if err := r.db.QueryRowContext(ctx, q, episodeID, score).Scan(&out.ID, &out.EpisodeID, &out.Score); err != nil {
		return nil, err
	}
	return &out, nil
}
