package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"moviedb/internal/repository"
	"moviedb/internal/storage"
)

// PresignExpiry bounds the lifetime of resolved poster URLs.
const PresignExpiry = time.Hour

// PosterUpload describes an uploaded image.
type PosterUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// PosterResult is the stored key of a new poster and a URL to fetch it.
type PosterResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// PosterService stores poster images for titles.
type PosterService interface {
	// UploadMoviePoster stores the image and points the movie at it. The object
	// is removed again if the movie cannot be updated.
	UploadMoviePoster(ctx context.Context, movieID int64, up PosterUpload) (*PosterResult, error)
	UploadTVShowPoster(ctx context.Context, showID int64, up PosterUpload) (*PosterResult, error)
	PosterResolver
}

// posterTarget reads and writes the poster column of one kind of title.
type posterTarget struct {
	current func(ctx context.Context, id int64) (string, error)
	set     func(ctx context.Context, id int64, poster string) error
}

type posterService struct {
	store  storage.Storage
	movies posterTarget
	shows  posterTarget
	log    *slog.Logger
}

// NewPosterService constructs a new PosterService. A nil store disables
// uploads with ErrStorageDisabled and leaves poster values unresolved.
func NewPosterService(store storage.Storage, movies repository.MovieRepository, shows repository.TVShowRepository, log *slog.Logger) PosterService {
	return &posterService{
		store: store,
		movies: posterTarget{
			current: func(ctx context.Context, id int64) (string, error) {
				m, err := movies.FindByID(ctx, id)
				if err != nil {
					return "", err
				}
				return m.Poster, nil
			},
			set: movies.SetPoster,
		},
		shows: posterTarget{
			current: func(ctx context.Context, id int64) (string, error) {
				t, err := shows.FindByID(ctx, id)
				if err != nil {
					return "", err
				}
				return t.Poster, nil
			},
			set: shows.SetPoster,
		},
		log: log,
	}
}

func (s *posterService) UploadMoviePoster(ctx context.Context, movieID int64, up PosterUpload) (*PosterResult, error) {
	return s.upload(ctx, s.movies, movieID, up)
}

func (s *posterService) UploadTVShowPoster(ctx context.Context, showID int64, up PosterUpload) (*PosterResult, error) {
	return s.upload(ctx, s.shows, showID, up)
}

func (s *posterService) upload(ctx context.Context, t posterTarget, id int64, up PosterUpload) (*PosterResult, error) {
	if s.store == nil {
		return nil, ErrStorageDisabled
	}
	if id <= 0 {
		return nil, ErrIDRequired
	}
	if up.Reader == nil {
		return nil, ErrReaderNil
	}

	previous, err := t.current(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	key := storage.NewPosterKey(up.Filename)
	obj, err := s.store.Put(ctx, key, up.Reader, storage.PutObjectOptions{
		Size:        up.Size,
		ContentType: up.ContentType,
		Metadata: map[string]string{
			"original-filename": up.Filename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	if err := t.set(ctx, id, obj.Key); err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, obj.Key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", notFound(err))
	}

	if storage.IsPosterKey(previous) {
		if err := s.store.Delete(ctx, previous); err != nil {
			s.log.WarnContext(ctx, "failed to delete replaced poster", "key", previous, "error", err)
		}
	}

	return &PosterResult{Key: obj.Key, URL: s.ResolveURL(ctx, obj.Key)}, nil
}

// ResolveURL presigns object keys; external URLs are returned unchanged.
func (s *posterService) ResolveURL(ctx context.Context, poster string) string {
	if s.store == nil || !storage.IsPosterKey(poster) {
		return poster
	}
	u, err := s.store.PresignGet(ctx, poster, PresignExpiry)
	if err != nil {
		s.log.WarnContext(ctx, "failed to presign poster", "key", poster, "error", err)
		return poster
	}
	return u
}
