package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"moviedb/internal/model"
	"moviedb/internal/repository"

	"golang.org/x/sync/errgroup"
)

// ContentType restricts a search to one kind of result.
type ContentType string

const (
	ContentAll       ContentType = "all"
	ContentMovies    ContentType = "movies"
	ContentTVShows   ContentType = "tv_shows"
	ContentActors    ContentType = "actors"
	ContentDirectors ContentType = "directors"
)

const (
	SearchLimitSingle = 20
	SearchLimitAll    = 10
)

// ParseContentType maps unknown values to ContentAll.
func ParseContentType(s string) ContentType {
	switch ct := ContentType(strings.ToLower(strings.TrimSpace(s))); ct {
	case ContentMovies, ContentTVShows, ContentActors, ContentDirectors:
		return ct
	default:
		return ContentAll
	}
}

// SearchParams are the raw search query parameters.
type SearchParams struct {
	Query       string
	MinRating   string
	MaxRating   string
	YearFrom    string
	YearTo      string
	ContentType string
}

// SearchResult groups matches by content type. Sections not searched are empty.
type SearchResult struct {
	Query       string                `json:"query"`
	ContentType ContentType           `json:"content_type"`
	Movies      []model.MovieSummary  `json:"movies"`
	TVShows     []model.TVShowSummary `json:"tv_shows"`
	Actors      []model.Person        `json:"actors"`
	Directors   []model.Person        `json:"directors"`
	Total       int                   `json:"total"`
}

// SearchService searches titles and people.
type SearchService interface {
	Search(ctx context.Context, p SearchParams) (*SearchResult, error)
}

type searchService struct {
	movies    repository.MovieRepository
	shows     repository.TVShowRepository
	actors    repository.PersonRepository
	directors repository.PersonRepository
}

// NewSearchService constructs a new SearchService.
func NewSearchService(movies repository.MovieRepository, shows repository.TVShowRepository, actors, directors repository.PersonRepository) SearchService {
	return &searchService{movies: movies, shows: shows, actors: actors, directors: directors}
}

func parseFloat(name, v string) (*float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", ErrInvalidFilter, name)
	}
	return &f, nil
}

func parseInt(name, v string) (*int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", ErrInvalidFilter, name)
	}
	return &n, nil
}

// ParseSearchFilter validates the numeric filters of p.
func ParseSearchFilter(p SearchParams) (repository.SearchFilter, error) {
	f := repository.SearchFilter{Query: strings.TrimSpace(p.Query)}
	var err error
	if f.MinRating, err = parseFloat("min_rating", p.MinRating); err != nil {
		return f, err
	}
	if f.MaxRating, err = parseFloat("max_rating", p.MaxRating); err != nil {
		return f, err
	}
	if f.YearFrom, err = parseInt("year_from", p.YearFrom); err != nil {
		return f, err
	}
	if f.YearTo, err = parseInt("year_to", p.YearTo); err != nil {
		return f, err
	}
	return f, nil
}

// Search runs the selected section queries concurrently. An empty query
// returns an empty result without touching the database.
func (s *searchService) Search(ctx context.Context, p SearchParams) (*SearchResult, error) {
	ct := ParseContentType(p.ContentType)
	res := &SearchResult{
		Query:       strings.TrimSpace(p.Query),
		ContentType: ct,
		Movies:      []model.MovieSummary{},
		TVShows:     []model.TVShowSummary{},
		Actors:      []model.Person{},
		Directors:   []model.Person{},
	}
	// filters only apply to a query, so an empty one ignores them
	if res.Query == "" {
		return res, nil
	}
	f, err := ParseSearchFilter(p)
	if err != nil {
		return nil, err
	}

	limit := SearchLimitSingle
	if ct == ContentAll {
		limit = SearchLimitAll
	}
	want := func(c ContentType) bool { return ct == ContentAll || ct == c }

	g, ctx := errgroup.WithContext(ctx)
	if want(ContentMovies) {
		g.Go(func() (err error) {
			res.Movies, err = s.movies.Search(ctx, f, limit)
			return err
		})
	}
	if want(ContentTVShows) {
		g.Go(func() (err error) {
			res.TVShows, err = s.shows.Search(ctx, f, limit)
			return err
		})
	}
	if want(ContentActors) {
		g.Go(func() (err error) {
			res.Actors, err = s.actors.Search(ctx, f.Query, limit)
			return err
		})
	}
	if want(ContentDirectors) {
		g.Go(func() (err error) {
			res.Directors, err = s.directors.Search(ctx, f.Query, limit)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res.Total = len(res.Movies) + len(res.TVShows) + len(res.Actors) + len(res.Directors)
	return res, nil
}
