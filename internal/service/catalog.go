package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"moviedb/internal/cache"
	"moviedb/internal/config"
	"moviedb/internal/model"
	"moviedb/internal/repository"

	"golang.org/x/sync/errgroup"
)

const (
	FeaturedMinRating = 4.0
	FeaturedLimit     = 6
	LatestLimit       = 8
	SimilarLimit      = 6
)

// ShowRatings is the cached rating summary of a show: its seasons with their
// aggregates and the show rating derived from them.
type ShowRatings struct {
	Seasons []model.Season
	Rating  model.Rating
}

// ShowRatingCache holds ShowRatings by show id.
type ShowRatingCache = cache.Cache[int64, ShowRatings]

// NewShowRatingCache builds the bounded show rating cache from config.
func NewShowRatingCache(cfg config.CacheConfig, m *cache.Metrics) *ShowRatingCache {
	return cache.New[int64, ShowRatings](cfg.MaxEntries, cfg.TTL).WithMetrics(m)
}

// HomePage is the landing page content.
type HomePage struct {
	FeaturedMovies  []model.MovieSummary  `json:"featured_movies"`
	FeaturedTVShows []model.TVShowSummary `json:"featured_tv_shows"`
	LatestMovies    []model.MovieSummary  `json:"latest_movies"`
	LatestTVShows   []model.TVShowSummary `json:"latest_tv_shows"`
}

// ListParams are the raw listing query parameters. Genre and Sort are
// validated; an empty value means no constraint.
type ListParams struct {
	Page   int
	Genre  string
	Search string
	Sort   string
}

// EpisodeItem is an episode row with its display title.
type EpisodeItem struct {
	model.Episode
	FullTitle string `json:"full_title"`
}

// EpisodeList is one page of a season's episodes.
type EpisodeList struct {
	ShowID       int64 `json:"show_id"`
	SeasonNumber int   `json:"season_number"`
	*Page[EpisodeItem]
}

// CatalogService defines the read-side use cases of the catalog.
type CatalogService interface {
	Home(ctx context.Context) (*HomePage, error)
	ListMovies(ctx context.Context, p ListParams) (*Page[model.MovieSummary], error)
	GetMovie(ctx context.Context, id int64) (*model.MovieDetail, error)
	ListTVShows(ctx context.Context, p ListParams) (*Page[model.TVShowSummary], error)
	GetTVShow(ctx context.Context, id int64) (*model.TVShowDetail, error)
	ListEpisodes(ctx context.Context, showID int64, seasonNumber, page int) (*EpisodeList, error)
	ListPeople(ctx context.Context, kind model.PersonKind, search string, page int) (*Page[model.PersonSummary], error)
	GetPerson(ctx context.Context, kind model.PersonKind, id int64) (*model.PersonDetail, error)
}

// PosterResolver turns a stored poster value into a URL clients can load.
type PosterResolver interface {
	ResolveURL(ctx context.Context, poster string) string
}

type catalogService struct {
	movies  repository.MovieRepository
	shows   repository.TVShowRepository
	people  map[model.PersonKind]repository.PersonRepository
	ratings *ShowRatingCache
	posters PosterResolver
	paging  config.PagingConfig
}

// NewCatalogService constructs a new CatalogService. posters may be nil, in
// which case poster values are returned as stored.
func NewCatalogService(
	movies repository.MovieRepository,
	shows repository.TVShowRepository,
	actors, directors repository.PersonRepository,
	ratings *ShowRatingCache,
	posters PosterResolver,
	paging config.PagingConfig,
) CatalogService {
	return &catalogService{
		movies: movies,
		shows:  shows,
		people: map[model.PersonKind]repository.PersonRepository{
			model.KindActor:    actors,
			model.KindDirector: directors,
		},
		ratings: ratings,
		posters: posters,
		paging:  paging,
	}
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Home loads the four landing page sections concurrently.
func (s *catalogService) Home(ctx context.Context) (*HomePage, error) {
	var home HomePage
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		home.FeaturedMovies, err = s.movies.Featured(ctx, FeaturedMinRating, FeaturedLimit)
		return err
	})
	g.Go(func() (err error) {
		home.FeaturedTVShows, err = s.shows.Featured(ctx, FeaturedMinRating, FeaturedLimit)
		return err
	})
	g.Go(func() (err error) {
		home.LatestMovies, err = s.movies.Latest(ctx, LatestLimit)
		return err
	})
	g.Go(func() (err error) {
		home.LatestTVShows, err = s.shows.Latest(ctx, LatestLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &home, nil
}

func titleFilter(p ListParams, dateSort repository.Sort) (repository.TitleFilter, error) {
	f := repository.TitleFilter{Search: p.Search}
	if p.Genre != "" {
		g, err := model.ParseGenre(p.Genre)
		if err != nil {
			return f, fmt.Errorf("%w: genre %q", ErrInvalidFilter, p.Genre)
		}
		f.Genre = g
	}
	switch repository.Sort(p.Sort) {
	case "", repository.SortTitle:
		f.Sort = repository.SortTitle
	case repository.SortRating:
		f.Sort = repository.SortRating
	case dateSort:
		f.Sort = dateSort
	default:
		return f, fmt.Errorf("%w: sort %q", ErrInvalidFilter, p.Sort)
	}
	return f, nil
}

func (s *catalogService) ListMovies(ctx context.Context, p ListParams) (*Page[model.MovieSummary], error) {
	f, err := titleFilter(p, repository.SortReleaseDate)
	if err != nil {
		return nil, err
	}
	return paginate(p.Page, s.paging.TitlesPerPage, func(pq repository.PageQuery) (*repository.PageResult[model.MovieSummary], error) {
		return s.movies.List(ctx, f, pq)
	})
}

// GetMovie returns a movie with its credits, rating and similar titles.
func (s *catalogService) GetMovie(ctx context.Context, id int64) (*model.MovieDetail, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}
	m, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	credits, err := s.movies.Credits(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	similar, err := s.movies.Similar(ctx, m.Genre, m.ID, SimilarLimit)
	if err != nil {
		return nil, err
	}

	m.Poster = s.resolvePoster(ctx, m.Poster)
	return &model.MovieDetail{
		Movie:   *m,
		Credits: credits[id],
		Similar: similar,
	}, nil
}

func (s *catalogService) ListTVShows(ctx context.Context, p ListParams) (*Page[model.TVShowSummary], error) {
	f, err := titleFilter(p, repository.SortStartDate)
	if err != nil {
		return nil, err
	}
	return paginate(p.Page, s.paging.TitlesPerPage, func(pq repository.PageQuery) (*repository.PageResult[model.TVShowSummary], error) {
		return s.shows.List(ctx, f, pq)
	})
}

// GetTVShow returns a show with its seasons, cached rating and similar titles.
func (s *catalogService) GetTVShow(ctx context.Context, id int64) (*model.TVShowDetail, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}
	show, err := s.shows.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	summary, err := s.showRatings(ctx, id)
	if err != nil {
		return nil, err
	}
	similar, err := s.shows.Similar(ctx, show.Genre, show.ID, SimilarLimit)
	if err != nil {
		return nil, err
	}

	show.Rating = summary.Rating
	show.Poster = s.resolvePoster(ctx, show.Poster)
	return &model.TVShowDetail{
		TVShow:  *show,
		Seasons: summary.Seasons,
		Similar: similar,
	}, nil
}

// showRatings returns the season aggregates and show rating, from cache when possible.
func (s *catalogService) showRatings(ctx context.Context, showID int64) (ShowRatings, error) {
	if s.ratings != nil {
		if v, ok := s.ratings.Get(showID); ok {
			return v, nil
		}
	}
	seasons, err := s.shows.Seasons(ctx, showID)
	if err != nil {
		return ShowRatings{}, err
	}
	rs := make([]model.Rating, len(seasons))
	for i, se := range seasons {
		rs[i] = se.Rating
	}
	v := ShowRatings{Seasons: seasons, Rating: model.MeanOf(rs)}
	if s.ratings != nil {
		s.ratings.Set(showID, v)
	}
	return v, nil
}

func (s *catalogService) ListEpisodes(ctx context.Context, showID int64, seasonNumber, page int) (*EpisodeList, error) {
	if showID <= 0 {
		return nil, ErrIDRequired
	}
	if seasonNumber < 0 {
		return nil, ErrNotFound
	}
	p, err := paginate(page, s.paging.EpisodesPerPage, func(pq repository.PageQuery) (*repository.PageResult[model.Episode], error) {
		return s.shows.Episodes(ctx, showID, seasonNumber, pq)
	})
	if err != nil {
		return nil, notFound(err)
	}
	return &EpisodeList{
		ShowID:       showID,
		SeasonNumber: seasonNumber,
		Page: mapPage(p, func(e model.Episode) EpisodeItem {
			return EpisodeItem{Episode: e, FullTitle: e.FullTitle()}
		}),
	}, nil
}

func (s *catalogService) personRepo(kind model.PersonKind) (repository.PersonRepository, error) {
	repo, ok := s.people[kind]
	if !ok || repo == nil {
		return nil, fmt.Errorf("unknown person kind %q", kind)
	}
	return repo, nil
}

func (s *catalogService) ListPeople(ctx context.Context, kind model.PersonKind, search string, page int) (*Page[model.PersonSummary], error) {
	repo, err := s.personRepo(kind)
	if err != nil {
		return nil, err
	}
	return paginate(page, s.paging.PeoplePerPage, func(pq repository.PageQuery) (*repository.PageResult[model.PersonSummary], error) {
		return repo.List(ctx, search, pq)
	})
}

// GetPerson returns a person with totals and credited titles.
func (s *catalogService) GetPerson(ctx context.Context, kind model.PersonKind, id int64) (*model.PersonDetail, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}
	repo, err := s.personRepo(kind)
	if err != nil {
		return nil, err
	}
	d, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if d.Movies, err = repo.Movies(ctx, id); err != nil {
		return nil, err
	}
	if d.TVShows, err = repo.TVShows(ctx, id); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *catalogService) resolvePoster(ctx context.Context, poster string) string {
	if s.posters == nil {
		return poster
	}
	return s.posters.ResolveURL(ctx, poster)
}
