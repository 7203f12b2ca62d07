package mocks

import (
	"context"

	"moviedb/internal/model"
	"moviedb/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockPersonRepository reports Kind from its field so tests need not stub it.
type MockPersonRepository struct {
	mock.Mock
	PersonKind model.PersonKind
}

func (m *MockPersonRepository) Kind() model.PersonKind {
	return m.PersonKind
}

func (m *MockPersonRepository) List(ctx context.Context, search string, pq repository.PageQuery) (*repository.PageResult[model.PersonSummary], error) {
	args := m.Called(ctx, search, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.PersonSummary]), args.Error(1)
}

func (m *MockPersonRepository) FindByID(ctx context.Context, id int64) (*model.PersonDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PersonDetail), args.Error(1)
}

func (m *MockPersonRepository) Movies(ctx context.Context, personID int64) ([]model.MovieSummary, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MovieSummary), args.Error(1)
}

func (m *MockPersonRepository) TVShows(ctx context.Context, personID int64) ([]model.TVShowSummary, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TVShowSummary), args.Error(1)
}

func (m *MockPersonRepository) Search(ctx context.Context, query string, limit int) ([]model.Person, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Person), args.Error(1)
}
