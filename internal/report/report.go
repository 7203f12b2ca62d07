package report

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"moviedb/internal/model"
	"moviedb/internal/repository"
)

const (
	DefaultLimit     = 500
	DefaultWorkers   = 4
	DefaultBatchSize = 50
	TopN             = 10
	// TopCollaborators is how many collaborators a detailed entry lists.
	TopCollaborators = 5
)

var tracer = otel.Tracer("moviedb/internal/report")

// Options tunes an analysis run. Zero values take the defaults; a negative
// Limit analyzes every actor.
type Options struct {
	Limit     int
	Workers   int
	BatchSize int
	Detailed  bool
}

func (o Options) withDefaults() Options {
	if o.Limit == 0 {
		o.Limit = DefaultLimit
	}
	if o.Workers <= 0 {
		o.Workers = DefaultWorkers
	}
	if o.BatchSize <= 0 {
		o.BatchSize = DefaultBatchSize
	}
	return o
}

// Career spans the release dates of an actor's movies and air dates of their
// episodes.
type Career struct {
	First     *time.Time
	Last      *time.Time
	SpanDays  int
	SpanYears float64
}

// GenreBreakdown is one genre of an actor's work.
type GenreBreakdown struct {
	Genre    model.Genre
	Movies   int
	Episodes int
	Rating   model.Rating
}

// ActorAnalysis is the computed entry of one actor.
type ActorAnalysis struct {
	ID            int64
	Name          string
	TotalMovies   int
	TotalEpisodes int
	MovieRating   model.Rating
	EpisodeRating model.Rating
	Overall       model.Rating
	// Distribution counts scores 1..5 across movies and episodes.
	Distribution  [model.MaxScore]int
	Career        Career
	Genres        []GenreBreakdown
	Collaborators []repository.Collaborator
}

// Report is the result of one run.
type Report struct {
	GeneratedAt   time.Time
	Elapsed       time.Duration
	Detailed      bool
	Actors        []ActorAnalysis
	TotalMovies   int
	TotalEpisodes int
	TopMovie      []ActorAnalysis
	TopTV         []ActorAnalysis
}

// Analyzer computes the actor rating analysis from grouped queries, a batch
// of actors at a time.
type Analyzer struct {
	repo repository.ReportRepository
	log  *slog.Logger
	now  func() time.Time
}

// NewAnalyzer constructs an Analyzer.
func NewAnalyzer(repo repository.ReportRepository, log *slog.Logger) *Analyzer {
	return &Analyzer{repo: repo, log: log, now: time.Now}
}

// Run analyzes up to opts.Limit actors with opts.Workers concurrent batches.
// Results keep the order of the actor ids.
func (a *Analyzer) Run(ctx context.Context, opts Options) (*Report, error) {
	opts = opts.withDefaults()
	start := a.now()

	limit := opts.Limit
	if limit < 0 {
		limit = 0
	}
	ids, err := a.repo.ActorIDs(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list actors: %w", err)
	}
	a.log.Info("report_started", "actors", len(ids), "workers", opts.Workers, "batch_size", opts.BatchSize)

	batches := make([][]ActorAnalysis, (len(ids)+opts.BatchSize-1)/opts.BatchSize)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := range batches {
		lo := i * opts.BatchSize
		hi := min(lo+opts.BatchSize, len(ids))
		g.Go(func() error {
			batch, err := a.analyzeBatch(ctx, ids[lo:hi], opts.Detailed)
			if err != nil {
				return fmt.Errorf("actors %d..%d: %w", lo, hi-1, err)
			}
			batches[i] = batch
			a.log.Debug("report_batch_done", "from", lo, "to", hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]ActorAnalysis, 0, len(ids))
	for _, b := range batches {
		results = append(results, b...)
	}

	r := summarize(results)
	r.GeneratedAt = start
	r.Detailed = opts.Detailed
	r.Elapsed = a.now().Sub(start)
	a.log.Info("report_finished", "actors", len(results), "elapsed_ms", r.Elapsed.Milliseconds())
	return r, nil
}

// analyzeBatch returns one entry per id, in id order. Actors removed since
// ActorIDs ran are skipped.
func (a *Analyzer) analyzeBatch(ctx context.Context, ids []int64, detailed bool) (_ []ActorAnalysis, err error) {
	ctx, span := tracer.Start(ctx, "report.analyzeBatch", trace.WithAttributes(
		attribute.Int("report.batch_size", len(ids)),
		attribute.Bool("report.detailed", detailed),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	stats, err := a.repo.ActorStats(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	byID := make(map[int64]repository.ActorStats, len(stats))
	for _, s := range stats {
		byID[s.Actor.ID] = s
	}

	var genres map[int64][]repository.GenreStat
	var collabs map[int64][]repository.Collaborator
	if detailed {
		if genres, err = a.repo.ActorGenres(ctx, ids); err != nil {
			return nil, fmt.Errorf("genres: %w", err)
		}
		if collabs, err = a.repo.ActorCollaborators(ctx, ids, TopCollaborators); err != nil {
			return nil, fmt.Errorf("collaborators: %w", err)
		}
	}

	out := make([]ActorAnalysis, 0, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok {
			continue
		}
		e := analyze(s)
		for _, g := range genres[id] {
			e.Genres = append(e.Genres, GenreBreakdown{
				Genre:    g.Genre,
				Movies:   g.Movies,
				Episodes: g.Episodes,
				Rating:   ratingFromSum(g.RatingSum, g.RatingCount),
			})
		}
		e.Collaborators = collabs[id]
		out = append(out, e)
	}
	return out, nil
}

func ratingFromSum(sum, count int) model.Rating {
	if count == 0 {
		return model.Rating{}
	}
	avg := float64(sum) / float64(count)
	return model.NewRating(&avg, count)
}

func ratingOf(dist [model.MaxScore]int) model.Rating {
	sum, count := 0, 0
	for i, n := range dist {
		sum += (i + 1) * n
		count += n
	}
	return ratingFromSum(sum, count)
}

func analyze(s repository.ActorStats) ActorAnalysis {
	e := ActorAnalysis{
		ID:            s.Actor.ID,
		Name:          s.Actor.Name(),
		TotalMovies:   s.MovieCount,
		TotalEpisodes: s.EpisodeCount,
		MovieRating:   ratingOf(s.MovieDistribution),
		EpisodeRating: ratingOf(s.EpisodeDistribution),
	}
	for i := range e.Distribution {
		e.Distribution[i] = s.MovieDistribution[i] + s.EpisodeDistribution[i]
	}
	e.Overall = ratingOf(e.Distribution)
	e.Career = career(s.FirstMovie, s.LastMovie, s.FirstEpisode, s.LastEpisode)
	return e
}

func career(dates ...*time.Time) Career {
	var c Career
	for _, d := range dates {
		if d == nil {
			continue
		}
		if c.First == nil || d.Before(*c.First) {
			c.First = d
		}
		if c.Last == nil || d.After(*c.Last) {
			c.Last = d
		}
	}
	if c.First != nil {
		c.SpanDays = int(c.Last.Sub(*c.First).Hours() / 24)
		c.SpanYears = float64(c.SpanDays) / 365.25
	}
	return c
}

// top returns the n best entries by the rating rate picks, skipping unrated
// ones. Ties go to the name, then the id.
func top(entries []ActorAnalysis, n int, rate func(ActorAnalysis) model.Rating) []ActorAnalysis {
	var rated []ActorAnalysis
	for _, e := range entries {
		if rate(e).Valid {
			rated = append(rated, e)
		}
	}
	slices.SortStableFunc(rated, func(a, b ActorAnalysis) int {
		if c := cmp.Compare(rate(b).Average, rate(a).Average); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if len(rated) > n {
		rated = rated[:n]
	}
	return rated
}

func summarize(entries []ActorAnalysis) *Report {
	r := &Report{Actors: entries}
	for _, e := range entries {
		r.TotalMovies += e.TotalMovies
		r.TotalEpisodes += e.TotalEpisodes
	}
	r.TopMovie = top(entries, TopN, func(e ActorAnalysis) model.Rating { return e.MovieRating })
	r.TopTV = top(entries, TopN, func(e ActorAnalysis) model.Rating { return e.EpisodeRating })
	return r
}
