package service

import (
	"context"
	"testing"

	"moviedb/internal/model"
	"moviedb/internal/repository"
	repoMocks "moviedb/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestParseContentType(t *testing.T) {
	assert.Equal(t, ContentMovies, ParseContentType("movies"))
	assert.Equal(t, ContentTVShows, ParseContentType(" TV_SHOWS "))
	assert.Equal(t, ContentAll, ParseContentType(""))
	assert.Equal(t, ContentAll, ParseContentType("podcasts"))
}

func TestParseSearchFilter(t *testing.T) {
	f, err := ParseSearchFilter(SearchParams{Query: "  matrix ", MinRating: "3.5", YearFrom: "1999", YearTo: " "})
	require.NoError(t, err)
	assert.Equal(t, "matrix", f.Query)
	require.NotNil(t, f.MinRating)
	assert.Equal(t, 3.5, *f.MinRating)
	assert.Nil(t, f.MaxRating)
	require.NotNil(t, f.YearFrom)
	assert.Equal(t, 1999, *f.YearFrom)
	assert.Nil(t, f.YearTo)

	for _, p := range []SearchParams{
		{MinRating: "high"},
		{MaxRating: "4,5"},
		{YearFrom: "1999.5"},
		{YearTo: "soon"},
	} {
		_, err := ParseSearchFilter(p)
		assert.ErrorIs(t, err, ErrInvalidFilter)
	}
}

func newSearch() (SearchService, *repoMocks.MockMovieRepository, *repoMocks.MockTVShowRepository, *repoMocks.MockPersonRepository, *repoMocks.MockPersonRepository) {
	movies := new(repoMocks.MockMovieRepository)
	shows := new(repoMocks.MockTVShowRepository)
	actors := &repoMocks.MockPersonRepository{PersonKind: model.KindActor}
	directors := &repoMocks.MockPersonRepository{PersonKind: model.KindDirector}
	return NewSearchService(movies, shows, actors, directors), movies, shows, actors, directors
}

func TestSearchService_All(t *testing.T) {
	svc, movies, shows, actors, directors := newSearch()
	f := repository.SearchFilter{Query: "star"}

	movies.On("Search", mock.Anything, f, 10).Return([]model.MovieSummary{{ID: 1}, {ID: 2}}, nil)
	shows.On("Search", mock.Anything, f, 10).Return([]model.TVShowSummary{{ID: 3}}, nil)
	actors.On("Search", mock.Anything, "star", 10).Return([]model.Person{}, nil)
	directors.On("Search", mock.Anything, "star", 10).Return([]model.Person{{ID: 4}}, nil)

	res, err := svc.Search(context.Background(), SearchParams{Query: "star", ContentType: "everything"})

	require.NoError(t, err)
	assert.Equal(t, ContentAll, res.ContentType)
	assert.Equal(t, 4, res.Total)
	assert.Len(t, res.Movies, 2)
	movies.AssertExpectations(t)
	shows.AssertExpectations(t)
	actors.AssertExpectations(t)
	directors.AssertExpectations(t)
}

func TestSearchService_SingleType(t *testing.T) {
	svc, movies, shows, actors, directors := newSearch()
	five := 5.0
	f := repository.SearchFilter{Query: "lost", MaxRating: &five}

	shows.On("Search", mock.Anything, f, 20).Return([]model.TVShowSummary{{ID: 1}}, nil)

	res, err := svc.Search(context.Background(), SearchParams{Query: "lost", MaxRating: "5", ContentType: "tv_shows"})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Empty(t, res.Movies)
	assert.NotNil(t, res.Movies)
	shows.AssertExpectations(t)
	movies.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
	actors.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
	directors.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchService_EmptyQuery(t *testing.T) {
	svc, movies, _, _, _ := newSearch()

	res, err := svc.Search(context.Background(), SearchParams{Query: "   "})

	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
	assert.Empty(t, res.Movies)
	movies.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)

	res, err = svc.Search(context.Background(), SearchParams{MinRating: "abc", YearTo: "soon"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
	assert.Empty(t, res.TVShows)
}

func TestSearchService_InvalidFilter(t *testing.T) {
	svc, _, _, _, _ := newSearch()

	res, err := svc.Search(context.Background(), SearchParams{Query: "x", YearFrom: "nineteen"})

	assert.ErrorIs(t, err, ErrInvalidFilter)
	assert.Nil(t, res)
}
