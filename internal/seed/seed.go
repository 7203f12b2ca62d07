package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"moviedb/internal/model"
	"moviedb/internal/repository"
)

// Options controls how much data Populate generates.
type Options struct {
	Movies    int
	TVShows   int
	Actors    int
	Directors int
	// Seed makes a run reproducible; the same seed yields the same catalog.
	Seed uint64
	// Posters are the values assigned to titles at random. Empty means PosterURLs.
	Posters []string
}

// DefaultOptions mirrors the catalog size used for local development.
func DefaultOptions() Options {
	return Options{Movies: 500, TVShows: 250, Actors: 200, Directors: 100}
}

// Validate rejects negative counts and casts that cannot be filled.
func (o Options) Validate() error {
	if o.Movies < 0 || o.TVShows < 0 || o.Actors < 0 || o.Directors < 0 {
		return fmt.Errorf("counts must not be negative")
	}
	if (o.Movies > 0 || o.TVShows > 0) && (o.Actors == 0 || o.Directors == 0) {
		return fmt.Errorf("titles need at least one actor and one director")
	}
	return nil
}

// Summary counts what a run inserted.
type Summary struct {
	Movies         int
	TVShows        int
	Seasons        int
	Episodes       int
	Actors         int
	Directors      int
	MovieRatings   int
	EpisodeRatings int
}

func (s Summary) String() string {
	return fmt.Sprintf("Successfully created %d movies, %d TV shows, %d actors, and %d directors with ratings!",
		s.Movies, s.TVShows, s.Actors, s.Directors)
}

var epoch = time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)

// flushRows bounds how many rating rows are held before they are written.
const flushRows = 50000

// Populator writes a random catalog through a SeedRepository.
type Populator struct {
	repo repository.SeedRepository
	log  *slog.Logger
	rng  *rand.Rand
}

// New returns a Populator. Run it inside a transaction so a failed run leaves
// nothing behind.
func New(repo repository.SeedRepository, log *slog.Logger) *Populator {
	return &Populator{repo: repo, log: log}
}

func (p *Populator) intn(lo, hi int) int {
	return lo + p.rng.IntN(hi-lo+1)
}

func (p *Populator) pick(xs []string) string {
	return xs[p.rng.IntN(len(xs))]
}

func (p *Populator) addDays(t time.Time, lo, hi int) time.Time {
	return t.AddDate(0, 0, p.intn(lo, hi))
}

// sample returns k distinct elements of ids (all of them when k >= len).
func (p *Populator) sample(ids []int64, k int) []int64 {
	if k >= len(ids) {
		return append([]int64(nil), ids...)
	}
	out := append([]int64(nil), ids...)
	for i := 0; i < k; i++ {
		j := i + p.rng.IntN(len(out)-i)
		out[i], out[j] = out[j], out[i]
	}
	return out[:k]
}

func (p *Populator) genre(genres []model.GenreChoice) model.Genre {
	return genres[p.rng.IntN(len(genres))].Code
}

// credits draws 10-20 actors and 1-4 directors for one title.
func (p *Populator) credits(titleID int64, actors, directors []int64, acts, dirs *[]repository.CreditLink) {
	for _, id := range p.sample(actors, p.intn(10, 20)) {
		*acts = append(*acts, repository.CreditLink{TitleID: titleID, PersonID: id})
	}
	for _, id := range p.sample(directors, p.intn(1, 4)) {
		*dirs = append(*dirs, repository.CreditLink{TitleID: titleID, PersonID: id})
	}
}

// Populate generates and inserts people, movies, shows with their seasons and
// episodes, credits and 0-100 ratings per movie and episode.
func (p *Populator) Populate(ctx context.Context, opts Options) (*Summary, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	p.rng = rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	posters := opts.Posters
	if len(posters) == 0 {
		posters = PosterURLs
	}

	var sum Summary
	actors, err := p.people(ctx, model.KindActor, opts.Actors, actorFirstNames, actorLastNames)
	if err != nil {
		return nil, err
	}
	sum.Actors = len(actors)
	p.log.Info("seed_progress", "step", "actors", "count", sum.Actors)

	directors, err := p.people(ctx, model.KindDirector, opts.Directors, directorFirstNames, directorLastNames)
	if err != nil {
		return nil, err
	}
	sum.Directors = len(directors)
	p.log.Info("seed_progress", "step", "directors", "count", sum.Directors)

	movieIDs, err := p.movies(ctx, opts.Movies, actors, directors, posters)
	if err != nil {
		return nil, err
	}
	sum.Movies = len(movieIDs)
	p.log.Info("seed_progress", "step", "movies", "count", sum.Movies)

	episodeIDs, err := p.shows(ctx, opts.TVShows, actors, directors, posters, &sum)
	if err != nil {
		return nil, err
	}
	p.log.Info("seed_progress", "step", "tv_shows", "count", sum.TVShows, "seasons", sum.Seasons, "episodes", sum.Episodes)

	if sum.MovieRatings, err = p.movieRatings(ctx, movieIDs); err != nil {
		return nil, err
	}
	if sum.EpisodeRatings, err = p.episodeRatings(ctx, episodeIDs); err != nil {
		return nil, err
	}
	p.log.Info("seed_progress", "step", "ratings", "movie_ratings", sum.MovieRatings, "episode_ratings", sum.EpisodeRatings)

	return &sum, nil
}

func (p *Populator) people(ctx context.Context, kind model.PersonKind, n int, first, last []string) ([]int64, error) {
	if n == 0 {
		return nil, nil
	}
	people := make([]model.Person, n)
	for i := range people {
		people[i] = model.Person{Kind: kind, FirstName: p.pick(first), LastName: p.pick(last)}
	}
	ids, err := p.repo.InsertPeople(ctx, kind, people)
	if err != nil {
		return nil, fmt.Errorf("insert %ss: %w", kind, err)
	}
	return ids, nil
}

func (p *Populator) movies(ctx context.Context, n int, actors, directors []int64, posters []string) ([]int64, error) {
	if n == 0 {
		return nil, nil
	}
	genres := model.Genres()
	movies := make([]model.Movie, n)
	for i := range movies {
		title := p.pick(movieTitles)
		movies[i] = model.Movie{
			Title:       title,
			Description: fmt.Sprintf("A compelling story about %s that will keep you on the edge of your seat.", strings.ToLower(title)),
			Genre:       p.genre(genres),
			ReleaseDate: p.addDays(epoch, 0, 12000),
			Duration:    time.Duration(p.intn(1, 3))*time.Hour + time.Duration(p.intn(0, 59))*time.Minute,
			Poster:      p.pick(posters),
		}
	}
	ids, err := p.repo.InsertMovies(ctx, movies)
	if err != nil {
		return nil, fmt.Errorf("insert movies: %w", err)
	}

	var acts, dirs []repository.CreditLink
	for _, id := range ids {
		p.credits(id, actors, directors, &acts, &dirs)
	}
	if err := p.repo.LinkCredits(ctx, repository.MovieActors, acts); err != nil {
		return nil, fmt.Errorf("link movie actors: %w", err)
	}
	if err := p.repo.LinkCredits(ctx, repository.MovieDirectors, dirs); err != nil {
		return nil, fmt.Errorf("link movie directors: %w", err)
	}
	return ids, nil
}

// shows inserts shows, then all their seasons, then all episodes, and returns
// the episode ids.
func (p *Populator) shows(ctx context.Context, n int, actors, directors []int64, posters []string, sum *Summary) ([]int64, error) {
	if n == 0 {
		return nil, nil
	}
	genres := model.Genres()
	shows := make([]model.TVShow, n)
	for i := range shows {
		title := p.pick(showTitles)
		start := p.addDays(epoch, 0, 10000)
		var end *time.Time
		if p.rng.Float64() > 0.3 {
			e := p.addDays(start, 365, 3650)
			end = &e
		}
		shows[i] = model.TVShow{
			Title:       title,
			Description: fmt.Sprintf("A groundbreaking series about %s that redefined television.", strings.ToLower(title)),
			Genre:       p.genre(genres),
			StartDate:   start,
			EndDate:     end,
			Poster:      p.pick(posters),
		}
	}
	showIDs, err := p.repo.InsertTVShows(ctx, shows)
	if err != nil {
		return nil, fmt.Errorf("insert tv shows: %w", err)
	}
	sum.TVShows = len(showIDs)

	var seasons []model.Season
	for i, id := range showIDs {
		count := p.intn(3, 10)
		for num := 1; num <= count; num++ {
			seasons = append(seasons, model.Season{
				ShowID:  id,
				Number:  num,
				Title:   p.pick(seasonTitles),
				AirDate: shows[i].StartDate.AddDate(0, 0, 365*(num-1)),
			})
		}
	}
	seasonIDs, err := p.repo.InsertSeasons(ctx, seasons)
	if err != nil {
		return nil, fmt.Errorf("insert seasons: %w", err)
	}
	sum.Seasons = len(seasonIDs)

	var episodes []model.Episode
	for i, id := range seasonIDs {
		count := p.intn(5, 15)
		for num := 1; num <= count; num++ {
			episodes = append(episodes, model.Episode{
				SeasonID:     id,
				SeasonNumber: seasons[i].Number,
				Number:       num,
				Title:        p.pick(episodeTitles),
				AirDate:      seasons[i].AirDate.AddDate(0, 0, 7*(num-1)),
				Description:  "An exciting episode that will keep you guessing.",
				Duration:     time.Duration(p.intn(20, 60)) * time.Minute,
			})
		}
	}
	episodeIDs, err := p.repo.InsertEpisodes(ctx, episodes)
	if err != nil {
		return nil, fmt.Errorf("insert episodes: %w", err)
	}
	sum.Episodes = len(episodeIDs)

	var acts, dirs []repository.CreditLink
	for _, id := range episodeIDs {
		p.credits(id, actors, directors, &acts, &dirs)
	}
	if err := p.repo.LinkCredits(ctx, repository.EpisodeActors, acts); err != nil {
		return nil, fmt.Errorf("link episode actors: %w", err)
	}
	if err := p.repo.LinkCredits(ctx, repository.EpisodeDirectors, dirs); err != nil {
		return nil, fmt.Errorf("link episode directors: %w", err)
	}
	return episodeIDs, nil
}

// ratings draws 0-100 scores per title and writes them in batches of at most
// roughly flushRows rows.
func ratings[T any](ctx context.Context, p *Populator, ids []int64, row func(id int64, score int) T, insert func(context.Context, []T) error) (int, error) {
	total := 0
	var batch []T
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := insert(ctx, batch); err != nil {
			return err
		}
		total += len(batch)
		batch = nil
		return nil
	}
	for _, id := range ids {
		for range p.intn(0, 100) {
			batch = append(batch, row(id, p.intn(model.MinScore, model.MaxScore)))
		}
		if len(batch) >= flushRows {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}
	return total, flush()
}

func (p *Populator) movieRatings(ctx context.Context, ids []int64) (int, error) {
	n, err := ratings(ctx, p, ids, func(id int64, score int) model.MovieRating {
		return model.MovieRating{MovieID: id, Score: score}
	}, p.repo.InsertMovieRatings)
	if err != nil {
		return n, fmt.Errorf("insert movie ratings: %w", err)
	}
	return n, nil
}

func (p *Populator) episodeRatings(ctx context.Context, ids []int64) (int, error) {
	n, err := ratings(ctx, p, ids, func(id int64, score int) model.EpisodeRating {
		return model.EpisodeRating{EpisodeID: id, Score: score}
	}, p.repo.InsertEpisodeRatings)
	if err != nil {
		return n, fmt.Errorf("insert episode ratings: %w", err)
	}
	return n, nil
}
