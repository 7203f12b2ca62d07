package mocks

import (
	"context"

	"moviedb/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) AddMovieRating(ctx context.Context, movieID int64, score int) (*model.MovieRating, error) {
	args := m.Called(ctx, movieID, score)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MovieRating), args.Error(1)
}

func (m *MockRatingRepository) AddEpisodeRating(ctx context.Context, episodeID int64, score int) (*model.EpisodeRating, error) {
	args := m.Called(ctx, episodeID, score)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EpisodeRating), args.Error(1)
}
