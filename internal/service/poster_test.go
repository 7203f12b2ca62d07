package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"

	"moviedb/internal/logger"
	"moviedb/internal/model"
	repoMocks "moviedb/internal/repository/mocks"
	"moviedb/internal/storage"
	storeMocks "moviedb/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func isPosterKey(ext string) any {
	return mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, storage.PosterPrefix) && strings.HasSuffix(key, ext)
	})
}

func TestPosterService_UploadMoviePoster(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		movieID    int64
		setupMocks func(st *storeMocks.MockStorage, movies *repoMocks.MockMovieRepository) io.Reader
		wantErr    error
		wantErrMsg string
	}{
		{
			name:    "happy path replaces stored poster",
			movieID: 1,
			setupMocks: func(st *storeMocks.MockStorage, movies *repoMocks.MockMovieRepository) io.Reader {
				r := strings.NewReader("png-bytes")
				movies.On("FindByID", ctx, int64(1)).Return(&model.Movie{ID: 1, Poster: "posters/old.png"}, nil)
				st.On("Put", ctx, isPosterKey(".png"), r, mock.Anything).
					Return(func(_ context.Context, key string, _ io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
						return storage.ObjectInfo{Key: key, Size: opt.Size, ContentType: opt.ContentType}
					}, nil)
				movies.On("SetPoster", ctx, int64(1), isPosterKey(".png")).Return(nil)
				st.On("Delete", ctx, "posters/old.png").Return(nil)
				st.On("PresignGet", ctx, isPosterKey(".png"), PresignExpiry).Return("https://s3/presigned", nil)
				return r
			},
		},
		{
			name:    "nil reader",
			movieID: 1,
			setupMocks: func(*storeMocks.MockStorage, *repoMocks.MockMovieRepository) io.Reader {
				return nil
			},
			wantErr: ErrReaderNil,
		},
		{
			name:    "unknown movie",
			movieID: 2,
			setupMocks: func(st *storeMocks.MockStorage, movies *repoMocks.MockMovieRepository) io.Reader {
				movies.On("FindByID", ctx, int64(2)).Return(nil, sql.ErrNoRows)
				return strings.NewReader("x")
			},
			wantErr: ErrNotFound,
		},
		{
			name:    "storage error",
			movieID: 3,
			setupMocks: func(st *storeMocks.MockStorage, movies *repoMocks.MockMovieRepository) io.Reader {
				r := strings.NewReader("x")
				movies.On("FindByID", ctx, int64(3)).Return(&model.Movie{ID: 3}, nil)
				st.On("Put", ctx, mock.Anything, r, mock.Anything).Return(storage.ObjectInfo{}, errors.New("storage fail"))
				return r
			},
			wantErrMsg: "upload to storage: storage fail",
		},
		{
			name:    "db error rolls back upload",
			movieID: 4,
			setupMocks: func(st *storeMocks.MockStorage, movies *repoMocks.MockMovieRepository) io.Reader {
				r := strings.NewReader("x")
				movies.On("FindByID", ctx, int64(4)).Return(&model.Movie{ID: 4}, nil)
				st.On("Put", ctx, mock.Anything, r, mock.Anything).Return(storage.ObjectInfo{Key: "posters/new.png"}, nil)
				movies.On("SetPoster", ctx, int64(4), "posters/new.png").Return(errors.New("db fail"))
				st.On("Delete", ctx, "posters/new.png").Return(nil)
				return r
			},
			wantErrMsg: "db save failed: db fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := new(storeMocks.MockStorage)
			movies := new(repoMocks.MockMovieRepository)
			svc := NewPosterService(st, movies, new(repoMocks.MockTVShowRepository), logger.Discard())
			r := tt.setupMocks(st, movies)

			res, err := svc.UploadMoviePoster(ctx, tt.movieID, PosterUpload{
				Reader: r, Filename: "cover.PNG", ContentType: "image/png", Size: 9,
			})

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
			case tt.wantErrMsg != "":
				assert.EqualError(t, err, tt.wantErrMsg)
				assert.Nil(t, res)
			default:
				require.NoError(t, err)
				assert.True(t, storage.IsPosterKey(res.Key))
				assert.Equal(t, "https://s3/presigned", res.URL)
			}
			st.AssertExpectations(t)
			movies.AssertExpectations(t)
		})
	}
}

func TestPosterService_StorageDisabled(t *testing.T) {
	svc := NewPosterService(nil, new(repoMocks.MockMovieRepository), new(repoMocks.MockTVShowRepository), logger.Discard())

	_, err := svc.UploadTVShowPoster(context.Background(), 1, PosterUpload{Reader: strings.NewReader("x")})
	assert.ErrorIs(t, err, ErrStorageDisabled)
	assert.Equal(t, "posters/a.jpg", svc.ResolveURL(context.Background(), "posters/a.jpg"))
}

func TestPosterService_ResolveURL(t *testing.T) {
	ctx := context.Background()
	st := new(storeMocks.MockStorage)
	svc := NewPosterService(st, new(repoMocks.MockMovieRepository), new(repoMocks.MockTVShowRepository), logger.Discard())

	st.On("PresignGet", ctx, "posters/a.jpg", PresignExpiry).Return("https://s3/a", nil)
	st.On("PresignGet", ctx, "posters/b.jpg", PresignExpiry).Return("", errors.New("offline"))

	assert.Equal(t, "https://s3/a", svc.ResolveURL(ctx, "posters/a.jpg"))
	assert.Equal(t, "posters/b.jpg", svc.ResolveURL(ctx, "posters/b.jpg"))
	assert.Equal(t, "https://img.test/x.jpg", svc.ResolveURL(ctx, "https://img.test/x.jpg"))
	st.AssertExpectations(t)
}
