package mocks

import (
	"context"

	"moviedb/internal/model"
	"moviedb/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Home(ctx context.Context) (*service.HomePage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.HomePage), args.Error(1)
}

func (m *MockCatalogService) ListMovies(ctx context.Context, p service.ListParams) (*service.Page[model.MovieSummary], error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[model.MovieSummary]), args.Error(1)
}

func (m *MockCatalogService) GetMovie(ctx context.Context, id int64) (*model.MovieDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MovieDetail), args.Error(1)
}

func (m *MockCatalogService) ListTVShows(ctx context.Context, p service.ListParams) (*service.Page[model.TVShowSummary], error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[model.TVShowSummary]), args.Error(1)
}

func (m *MockCatalogService) GetTVShow(ctx context.Context, id int64) (*model.TVShowDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TVShowDetail), args.Error(1)
}

func (m *MockCatalogService) ListEpisodes(ctx context.Context, showID int64, seasonNumber, page int) (*service.EpisodeList, error) {
	args := m.Called(ctx, showID, seasonNumber, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.EpisodeList), args.Error(1)
}

func (m *MockCatalogService) ListPeople(ctx context.Context, kind model.PersonKind, search string, page int) (*service.Page[model.PersonSummary], error) {
	args := m.Called(ctx, kind, search, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[model.PersonSummary]), args.Error(1)
}

func (m *MockCatalogService) GetPerson(ctx context.Context, kind model.PersonKind, id int64) (*model.PersonDetail, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PersonDetail), args.Error(1)
}

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, p service.SearchParams) (*service.SearchResult, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SearchResult), args.Error(1)
}

type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) RateMovie(ctx context.Context, movieID int64, score int) (*model.MovieRating, error) {
	args := m.Called(ctx, movieID, score)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MovieRating), args.Error(1)
}

func (m *MockRatingService) RateEpisode(ctx context.Context, episodeID int64, score int) (*model.EpisodeRating, error) {
	args := m.Called(ctx, episodeID, score)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EpisodeRating), args.Error(1)
}

type MockPosterService struct {
	mock.Mock
}

func (m *MockPosterService) UploadMoviePoster(ctx context.Context, movieID int64, up service.PosterUpload) (*service.PosterResult, error) {
	args := m.Called(ctx, movieID, up)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PosterResult), args.Error(1)
}

func (m *MockPosterService) UploadTVShowPoster(ctx context.Context, showID int64, up service.PosterUpload) (*service.PosterResult, error) {
	args := m.Called(ctx, showID, up)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PosterResult), args.Error(1)
}

func (m *MockPosterService) ResolveURL(ctx context.Context, poster string) string {
	args := m.Called(ctx, poster)
	return args.String(0)
}
