package repository

import (
	"context"

	"moviedb/internal/model"
)

// MovieRepository defines data access for movies.
type MovieRepository interface {
	// List returns a page of movies with their rating aggregates.
	// Search matches title, description and the names of credited actors and directors.
	List(ctx context.Context, f TitleFilter, pq PageQuery) (*PageResult[model.MovieSummary], error)

	// FindByID returns a single movie including its rating aggregate.
	FindByID(ctx context.Context, id int64) (*model.Movie, error)

	// Featured returns up to limit movies whose average rating is at least minAvg, best first.
	Featured(ctx context.Context, minAvg float64, limit int) ([]model.MovieSummary, error)

	// Latest returns the most recently released movies.
	Latest(ctx context.Context, limit int) ([]model.MovieSummary, error)

	// Similar returns movies of the same genre, excluding excludeID.
	Similar(ctx context.Context, genre model.Genre, excludeID int64, limit int) ([]model.MovieSummary, error)

	// Credits loads actors and directors for all given movies at once.
	// Movies without credits are present in the map with empty slices.
	Credits(ctx context.Context, movieIDs []int64) (map[int64]model.Credits, error)

	// Search returns movies matching the global search filter.
	Search(ctx context.Context, f SearchFilter, limit int) ([]model.MovieSummary, error)

	// SetPoster replaces the poster reference. Returns sql.ErrNoRows for unknown ids.
	SetPoster(ctx context.Context, id int64, poster string) error
}
