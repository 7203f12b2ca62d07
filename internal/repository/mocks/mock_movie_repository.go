package mocks

import (
	"context"

	"moviedb/internal/model"
	"moviedb/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) List(ctx context.Context, f repository.TitleFilter, pq repository.PageQuery) (*repository.PageResult[model.MovieSummary], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.MovieSummary]), args.Error(1)
}

func (m *MockMovieRepository) FindByID(ctx context.Context, id int64) (*model.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Movie), args.Error(1)
}

func (m *MockMovieRepository) Featured(ctx context.Context, minAvg float64, limit int) ([]model.MovieSummary, error) {
	args := m.Called(ctx, minAvg, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MovieSummary), args.Error(1)
}

func (m *MockMovieRepository) Latest(ctx context.Context, limit int) ([]model.MovieSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MovieSummary), args.Error(1)
}

func (m *MockMovieRepository) Similar(ctx context.Context, genre model.Genre, excludeID int64, limit int) ([]model.MovieSummary, error) {
	args := m.Called(ctx, genre, excludeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MovieSummary), args.Error(1)
}

func (m *MockMovieRepository) Credits(ctx context.Context, movieIDs []int64) (map[int64]model.Credits, error) {
	args := m.Called(ctx, movieIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]model.Credits), args.Error(1)
}

func (m *MockMovieRepository) Search(ctx context.Context, f repository.SearchFilter, limit int) ([]model.MovieSummary, error) {
	args := m.Called(ctx, f, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MovieSummary), args.Error(1)
}

func (m *MockMovieRepository) SetPoster(ctx context.Context, id int64, poster string) error {
	args := m.Called(ctx, id, poster)
	return args.Error(0)
}
