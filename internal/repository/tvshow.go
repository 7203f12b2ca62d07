package repository

import (
	"context"

	"moviedb/internal/model"
)

// TVShowRepository defines data access for TV shows, seasons and episodes.
// Show ratings in listings are the mean over every episode rating of the show.
type TVShowRepository interface {
	List(ctx context.Context, f TitleFilter, pq PageQuery) (*PageResult[model.TVShowSummary], error)

	// FindByID returns the show without a rating; callers derive it from Seasons.
	FindByID(ctx context.Context, id int64) (*model.TVShow, error)

	Featured(ctx context.Context, minAvg float64, limit int) ([]model.TVShowSummary, error)
	Latest(ctx context.Context, limit int) ([]model.TVShowSummary, error)
	Similar(ctx context.Context, genre model.Genre, excludeID int64, limit int) ([]model.TVShowSummary, error)

	// Seasons returns the seasons of a show ordered by number, each with the
	// mean of its rated episodes' averages.
	Seasons(ctx context.Context, showID int64) ([]model.Season, error)

	// Episodes returns a page of one season's episodes ordered by number.
	Episodes(ctx context.Context, showID int64, seasonNumber int, pq PageQuery) (*PageResult[model.Episode], error)

	Search(ctx context.Context, f SearchFilter, limit int) ([]model.TVShowSummary, error)
	SetPoster(ctx context.Context, id int64, poster string) error

	// ShowIDForEpisode resolves the show an episode belongs to.
	ShowIDForEpisode(ctx context.Context, episodeID int64) (int64, error)
}
