package mocks

import (
	"context"

	"moviedb/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) ActorIDs(ctx context.Context, limit int) ([]int64, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockReportRepository) ActorStats(ctx context.Context, actorIDs []int64) ([]repository.ActorStats, error) {
	args := m.Called(ctx, actorIDs)
	switch v := args.Get(0).(type) {
	case nil:
		return nil, args.Error(1)
	case func([]int64) []repository.ActorStats:
		return v(actorIDs), args.Error(1)
	default:
		return v.([]repository.ActorStats), args.Error(1)
	}
}

func (m *MockReportRepository) ActorGenres(ctx context.Context, actorIDs []int64) (map[int64][]repository.GenreStat, error) {
	args := m.Called(ctx, actorIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]repository.GenreStat), args.Error(1)
}

func (m *MockReportRepository) ActorCollaborators(ctx context.Context, actorIDs []int64, top int) (map[int64][]repository.Collaborator, error) {
	args := m.Called(ctx, actorIDs, top)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]repository.Collaborator), args.Error(1)
}
