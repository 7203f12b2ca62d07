package mocks

import (
	"context"

	"moviedb/internal/model"
	"moviedb/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockSeedRepository struct {
	mock.Mock
}

// ids returns the first mocked value, which is either a []int64 or a
// func(n int) []int64 called with the number of inserted rows.
func (m *MockSeedRepository) ids(args mock.Arguments, n int) ([]int64, error) {
	switch v := args.Get(0).(type) {
	case nil:
		return nil, args.Error(1)
	case func(int) []int64:
		return v(n), args.Error(1)
	default:
		return v.([]int64), args.Error(1)
	}
}

func (m *MockSeedRepository) InsertPeople(ctx context.Context, kind model.PersonKind, people []model.Person) ([]int64, error) {
	return m.ids(m.Called(ctx, kind, people), len(people))
}

func (m *MockSeedRepository) InsertMovies(ctx context.Context, movies []model.Movie) ([]int64, error) {
	return m.ids(m.Called(ctx, movies), len(movies))
}

func (m *MockSeedRepository) InsertTVShows(ctx context.Context, shows []model.TVShow) ([]int64, error) {
	return m.ids(m.Called(ctx, shows), len(shows))
}

func (m *MockSeedRepository) InsertSeasons(ctx context.Context, seasons []model.Season) ([]int64, error) {
	return m.ids(m.Called(ctx, seasons), len(seasons))
}

func (m *MockSeedRepository) InsertEpisodes(ctx context.Context, episodes []model.Episode) ([]int64, error) {
	return m.ids(m.Called(ctx, episodes), len(episodes))
}

func (m *MockSeedRepository) LinkCredits(ctx context.Context, table repository.CreditTable, links []repository.CreditLink) error {
	args := m.Called(ctx, table, links)
	return args.Error(0)
}

func (m *MockSeedRepository) InsertMovieRatings(ctx context.Context, ratings []model.MovieRating) error {
	args := m.Called(ctx, ratings)
	return args.Error(0)
}

func (m *MockSeedRepository) InsertEpisodeRatings(ctx context.Context, ratings []model.EpisodeRating) error {
	args := m.Called(ctx, ratings)
	return args.Error(0)
}
