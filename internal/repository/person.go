package repository

import (
	"context"

	"moviedb/internal/model"
)

// PersonRepository defines data access for one kind of person (actors or directors).
type PersonRepository interface {
	Kind() model.PersonKind

	// List returns people ordered by first name with their credit counts.
	List(ctx context.Context, search string, pq PageQuery) (*PageResult[model.PersonSummary], error)

	// FindByID returns the person with distinct movie and TV show totals.
	// Movies and TVShows are left empty; see Movies and TVShows.
	FindByID(ctx context.Context, id int64) (*model.PersonDetail, error)

	Movies(ctx context.Context, personID int64) ([]model.MovieSummary, error)
	TVShows(ctx context.Context, personID int64) ([]model.TVShowSummary, error)

	Search(ctx context.Context, query string, limit int) ([]model.Person, error)
}
