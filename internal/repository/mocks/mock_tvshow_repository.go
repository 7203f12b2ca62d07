package mocks

import (
	"context"

	"moviedb/internal/model"
	"moviedb/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockTVShowRepository struct {
	mock.Mock
}

func (m *MockTVShowRepository) List(ctx context.Context, f repository.TitleFilter, pq repository.PageQuery) (*repository.PageResult[model.TVShowSummary], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.TVShowSummary]), args.Error(1)
}

func (m *MockTVShowRepository) FindByID(ctx context.Context, id int64) (*model.TVShow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TVShow), args.Error(1)
}

func (m *MockTVShowRepository) Featured(ctx context.Context, minAvg float64, limit int) ([]model.TVShowSummary, error) {
	args := m.Called(ctx, minAvg, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TVShowSummary), args.Error(1)
}

func (m *MockTVShowRepository) Latest(ctx context.Context, limit int) ([]model.TVShowSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TVShowSummary), args.Error(1)
}

func (m *MockTVShowRepository) Similar(ctx context.Context, genre model.Genre, excludeID int64, limit int) ([]model.TVShowSummary, error) {
	args := m.Called(ctx, genre, excludeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TVShowSummary), args.Error(1)
}

func (m *MockTVShowRepository) Seasons(ctx context.Context, showID int64) ([]model.Season, error) {
	args := m.Called(ctx, showID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Season), args.Error(1)
}

func (m *MockTVShowRepository) Episodes(ctx context.Context, showID int64, seasonNumber int, pq repository.PageQuery) (*repository.PageResult[model.Episode], error) {
	args := m.Called(ctx, showID, seasonNumber, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Episode]), args.Error(1)
}

func (m *MockTVShowRepository) Search(ctx context.Context, f repository.SearchFilter, limit int) ([]model.TVShowSummary, error) {
	args := m.Called(ctx, f, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TVShowSummary), args.Error(1)
}

func (m *MockTVShowRepository) SetPoster(ctx context.Context, id int64, poster string) error {
	args := m.Called(ctx, id, poster)
	return args.Error(0)
}

func (m *MockTVShowRepository) ShowIDForEpisode(ctx context.Context, episodeID int64) (int64, error) {
	args := m.Called(ctx, episodeID)
	return args.Get(0).(int64), args.Error(1)
}
