package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"moviedb/internal/config"
	"moviedb/internal/model"
	"moviedb/internal/repository"
	repoMocks "moviedb/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogMocks struct {
	movies    *repoMocks.MockMovieRepository
	shows     *repoMocks.MockTVShowRepository
	actors    *repoMocks.MockPersonRepository
	directors *repoMocks.MockPersonRepository
	cache     *ShowRatingCache
}

func newCatalog(posters PosterResolver) (CatalogService, catalogMocks) {
	m := catalogMocks{
		movies:    new(repoMocks.MockMovieRepository),
		shows:     new(repoMocks.MockTVShowRepository),
		actors:    &repoMocks.MockPersonRepository{PersonKind: model.KindActor},
		directors: &repoMocks.MockPersonRepository{PersonKind: model.KindDirector},
		cache:     NewShowRatingCache(config.CacheConfig{MaxEntries: 8, TTL: time.Minute}, nil),
	}
	svc := NewCatalogService(m.movies, m.shows, m.actors, m.directors, m.cache, posters,
		config.PagingConfig{TitlesPerPage: 12, PeoplePerPage: 20, EpisodesPerPage: 15})
	return svc, m
}

func rated(avg float64, count int) model.Rating {
	return model.NewRating(&avg, count)
}

func TestCatalogService_Home(t *testing.T) {
	svc, m := newCatalog(nil)

	featured := []model.MovieSummary{{ID: 1, Title: "Top", Rating: rated(4.5, 10)}}
	latest := []model.MovieSummary{{ID: 2, Title: "New"}}
	m.movies.On("Featured", mock.Anything, 4.0, 6).Return(featured, nil)
	m.movies.On("Latest", mock.Anything, 8).Return(latest, nil)
	m.shows.On("Featured", mock.Anything, 4.0, 6).Return([]model.TVShowSummary{}, nil)
	m.shows.On("Latest", mock.Anything, 8).Return([]model.TVShowSummary{{ID: 3}}, nil)

	home, err := svc.Home(context.Background())

	require.NoError(t, err)
	assert.Equal(t, featured, home.FeaturedMovies)
	assert.Equal(t, latest, home.LatestMovies)
	assert.Empty(t, home.FeaturedTVShows)
	assert.Len(t, home.LatestTVShows, 1)
	m.movies.AssertExpectations(t)
	m.shows.AssertExpectations(t)
}

func TestCatalogService_HomeError(t *testing.T) {
	svc, m := newCatalog(nil)

	m.movies.On("Featured", mock.Anything, 4.0, 6).Return(nil, errors.New("db down"))
	m.movies.On("Latest", mock.Anything, 8).Return([]model.MovieSummary{}, nil).Maybe()
	m.shows.On("Featured", mock.Anything, 4.0, 6).Return([]model.TVShowSummary{}, nil).Maybe()
	m.shows.On("Latest", mock.Anything, 8).Return([]model.TVShowSummary{}, nil).Maybe()

	home, err := svc.Home(context.Background())

	assert.EqualError(t, err, "db down")
	assert.Nil(t, home)
}

func TestCatalogService_ListMovies(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		params     ListParams
		setupMocks func(m catalogMocks)
		wantErr    error
		wantPage   int
	}{
		{
			name:   "genre and sort",
			params: ListParams{Page: 2, Genre: "drama", Sort: "release_date", Search: "love"},
			setupMocks: func(m catalogMocks) {
				f := repository.TitleFilter{Genre: model.GenreDrama, Search: "love", Sort: repository.SortReleaseDate}
				m.movies.On("List", ctx, f, repository.PageQuery{Limit: 12, Offset: 12}).
					Return(&repository.PageResult[model.MovieSummary]{Items: []model.MovieSummary{{ID: 1}}, Total: 13}, nil)
			},
			wantPage: 2,
		},
		{
			name:   "default sort is title",
			params: ListParams{},
			setupMocks: func(m catalogMocks) {
				f := repository.TitleFilter{Sort: repository.SortTitle}
				m.movies.On("List", ctx, f, repository.PageQuery{Limit: 12, Offset: 0}).
					Return(&repository.PageResult[model.MovieSummary]{Total: 0}, nil)
			},
			wantPage: 1,
		},
		{
			name:       "unknown genre",
			params:     ListParams{Genre: "opera"},
			setupMocks: func(m catalogMocks) {},
			wantErr:    ErrInvalidFilter,
		},
		{
			name:       "start_date is not a movie sort",
			params:     ListParams{Sort: "start_date"},
			setupMocks: func(m catalogMocks) {},
			wantErr:    ErrInvalidFilter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newCatalog(nil)
			tt.setupMocks(m)

			page, err := svc.ListMovies(ctx, tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, page)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantPage, page.Page)
				assert.Equal(t, 12, page.PageSize)
			}
			m.movies.AssertExpectations(t)
		})
	}
}

type stubResolver struct{}

func (stubResolver) ResolveURL(_ context.Context, poster string) string {
	return "https://cdn.test/" + poster
}

func TestCatalogService_GetMovie(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		svc, m := newCatalog(stubResolver{})
		movie := &model.Movie{ID: 5, Title: "Heat", Genre: model.GenreCrime, Poster: "posters/heat.jpg", Rating: rated(4, 2)}
		credits := model.Credits{Actors: []model.Person{{ID: 1, FullName: "Al Pacino"}}, Directors: []model.Person{}}

		m.movies.On("FindByID", ctx, int64(5)).Return(movie, nil)
		m.movies.On("Credits", ctx, []int64{5}).Return(map[int64]model.Credits{5: credits}, nil)
		m.movies.On("Similar", ctx, model.GenreCrime, int64(5), 6).Return([]model.MovieSummary{{ID: 6}}, nil)

		d, err := svc.GetMovie(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, "Heat", d.Title)
		assert.Equal(t, "https://cdn.test/posters/heat.jpg", d.Poster)
		assert.Equal(t, credits, d.Credits)
		assert.Len(t, d.Similar, 1)
		m.movies.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newCatalog(nil)
		m.movies.On("FindByID", ctx, int64(9)).Return(nil, sql.ErrNoRows)

		d, err := svc.GetMovie(ctx, 9)

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, d)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc, _ := newCatalog(nil)
		_, err := svc.GetMovie(ctx, 0)
		assert.ErrorIs(t, err, ErrIDRequired)
	})
}

func TestCatalogService_GetTVShow(t *testing.T) {
	ctx := context.Background()
	svc, m := newCatalog(nil)

	show := &model.TVShow{ID: 1, Title: "Lost", Genre: model.GenreDrama}
	seasons := []model.Season{
		{ID: 10, Number: 1, Rating: rated(4.0, 10)},
		{ID: 11, Number: 2, Rating: rated(3.0, 2)},
		{ID: 12, Number: 3},
	}
	m.shows.On("FindByID", ctx, int64(1)).Return(show, nil)
	m.shows.On("Seasons", ctx, int64(1)).Return(seasons, nil).Once()
	m.shows.On("Similar", ctx, model.GenreDrama, int64(1), 6).Return([]model.TVShowSummary{}, nil)

	d, err := svc.GetTVShow(ctx, 1)
	require.NoError(t, err)
	assert.True(t, d.Rating.Valid)
	assert.InDelta(t, 3.5, d.Rating.Average, 1e-9, "mean of rated seasons")
	assert.Equal(t, 12, d.Rating.Count)
	assert.Len(t, d.Seasons, 3)

	// served from cache: Seasons is expected only once
	d, err = svc.GetTVShow(ctx, 1)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, d.Rating.Average, 1e-9)
	assert.Equal(t, 1, m.cache.Len())
	m.shows.AssertExpectations(t)
}

func TestCatalogService_ListEpisodes(t *testing.T) {
	ctx := context.Background()

	t.Run("page with full titles", func(t *testing.T) {
		svc, m := newCatalog(nil)
		m.shows.On("Episodes", ctx, int64(1), 2, repository.PageQuery{Limit: 15, Offset: 0}).
			Return(&repository.PageResult[model.Episode]{
				Items: []model.Episode{{ID: 1, SeasonNumber: 2, Number: 3, Title: "Pilot"}},
				Total: 1,
			}, nil)

		list, err := svc.ListEpisodes(ctx, 1, 2, 1)

		require.NoError(t, err)
		assert.Equal(t, 2, list.SeasonNumber)
		require.Len(t, list.Items, 1)
		assert.Equal(t, "S02E03 - Pilot", list.Items[0].FullTitle)
		assert.Equal(t, 15, list.PageSize)
	})

	t.Run("missing season", func(t *testing.T) {
		svc, m := newCatalog(nil)
		m.shows.On("Episodes", ctx, int64(1), 7, mock.Anything).Return(nil, sql.ErrNoRows)

		_, err := svc.ListEpisodes(ctx, 1, 7, 1)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCatalogService_People(t *testing.T) {
	ctx := context.Background()
	svc, m := newCatalog(nil)

	m.directors.On("List", ctx, "nol", repository.PageQuery{Limit: 20, Offset: 0}).
		Return(&repository.PageResult[model.PersonSummary]{Items: []model.PersonSummary{{MovieCount: 3}}, Total: 1}, nil)
	page, err := svc.ListPeople(ctx, model.KindDirector, "nol", 1)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)

	detail := &model.PersonDetail{Person: model.Person{ID: 4, FullName: "Tom Hanks"}, TotalMovies: 2}
	m.actors.On("FindByID", ctx, int64(4)).Return(detail, nil)
	m.actors.On("Movies", ctx, int64(4)).Return([]model.MovieSummary{{ID: 1}, {ID: 2}}, nil)
	m.actors.On("TVShows", ctx, int64(4)).Return([]model.TVShowSummary{}, nil)

	d, err := svc.GetPerson(ctx, model.KindActor, 4)
	require.NoError(t, err)
	assert.Len(t, d.Movies, 2)
	assert.Empty(t, d.TVShows)

	m.actors.On("FindByID", ctx, int64(5)).Return(nil, sql.ErrNoRows)
	_, err = svc.GetPerson(ctx, model.KindActor, 5)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.ListPeople(ctx, model.PersonKind("writer"), "", 1)
	assert.Error(t, err)

	m.actors.AssertExpectations(t)
	m.directors.AssertExpectations(t)
}
