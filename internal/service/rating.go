package service

import (
	"context"

	"moviedb/internal/model"
	"moviedb/internal/repository"
)

// RatingService records user scores.
type RatingService interface {
	RateMovie(ctx context.Context, movieID int64, score int) (*model.MovieRating, error)

	// RateEpisode stores the score and drops the cached rating of the episode's show.
	RateEpisode(ctx context.Context, episodeID int64, score int) (*model.EpisodeRating, error)
}

type ratingService struct {
	ratings repository.RatingRepository
	shows   repository.TVShowRepository
	cache   *ShowRatingCache
}

// NewRatingService constructs a new RatingService. cache may be nil.
func NewRatingService(ratings repository.RatingRepository, shows repository.TVShowRepository, cache *ShowRatingCache) RatingService {
	return &ratingService{ratings: ratings, shows: shows, cache: cache}
}

func (s *ratingService) RateMovie(ctx context.Context, movieID int64, score int) (*model.MovieRating, error) {
	if movieID <= 0 {
		return nil, ErrIDRequired
	}
	if err := model.ValidateScore(score); err != nil {
		return nil, err
	}
	r, err := s.ratings.AddMovieRating(ctx, movieID, score)
	if err != nil {
		return nil, notFound(err)
	}
	return r, nil
}

func (s *ratingService) RateEpisode(ctx context.Context, episodeID int64, score int) (*model.EpisodeRating, error) {
	if episodeID <= 0 {
		return nil, ErrIDRequired
	}
	if err := model.ValidateScore(score); err != nil {
		return nil, err
	}
	showID, err := s.shows.ShowIDForEpisode(ctx, episodeID)
	if err != nil {
		return nil, notFound(err)
	}
	r, err := s.ratings.AddEpisodeRating(ctx, episodeID, score)
	if err != nil {
		return nil, notFound(err)
	}
	if s.cache != nil {
		s.cache.Delete(showID)
	}
	return r, nil
}
