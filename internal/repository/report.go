package repository

import (
	"context"
	"time"

	"moviedb/internal/model"
)

// ActorStats holds the raw per-actor aggregates behind the rating analysis.
// Distributions are indexed by score-1.
type ActorStats struct {
	Actor               model.Person
	MovieCount          int
	EpisodeCount        int
	MovieDistribution   [model.MaxScore]int
	EpisodeDistribution [model.MaxScore]int
	FirstMovie          *time.Time
	LastMovie           *time.Time
	FirstEpisode        *time.Time
	LastEpisode         *time.Time
}

// GenreStat counts one actor's credits and ratings in one genre.
// Episode credits count toward the genre of their show.
type GenreStat struct {
	Genre       model.Genre
	Movies      int
	Episodes    int
	RatingSum   int
	RatingCount int
}

// Collaborator is someone credited alongside an actor.
type Collaborator struct {
	Name     string
	Director bool
	Count    int
}

// ReportRepository provides grouped aggregates for batches of actors.
// Every method issues a fixed number of queries regardless of batch size.
type ReportRepository interface {
	ActorIDs(ctx context.Context, limit int) ([]int64, error)
	ActorStats(ctx context.Context, actorIDs []int64) ([]ActorStats, error)
	ActorGenres(ctx context.Context, actorIDs []int64) (map[int64][]GenreStat, error)
	ActorCollaborators(ctx context.Context, actorIDs []int64, top int) (map[int64][]Collaborator, error)
}
