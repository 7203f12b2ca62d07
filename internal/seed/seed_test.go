package seed

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"moviedb/internal/logger"
	"moviedb/internal/model"
	"moviedb/internal/repository"
	repoMocks "moviedb/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// seq hands out consecutive ids starting at start.
func seq(start int64) func(int) []int64 {
	next := start
	return func(n int) []int64 {
		ids := make([]int64, n)
		for i := range ids {
			ids[i] = next
			next++
		}
		return ids
	}
}

type captured struct {
	movies         []model.Movie
	shows          []model.TVShow
	seasons        []model.Season
	episodes       []model.Episode
	links          map[repository.CreditTable][]repository.CreditLink
	movieRatings   []model.MovieRating
	episodeRatings []model.EpisodeRating
}

func expectAll(repo *repoMocks.MockSeedRepository) *captured {
	c := &captured{links: map[repository.CreditTable][]repository.CreditLink{}}
	repo.On("InsertPeople", mock.Anything, model.KindActor, mock.Anything).Return(seq(1), nil)
	repo.On("InsertPeople", mock.Anything, model.KindDirector, mock.Anything).Return(seq(1000), nil)
	repo.On("InsertMovies", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		c.movies = args.Get(1).([]model.Movie)
	}).Return(seq(1), nil)
	repo.On("InsertTVShows", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		c.shows = args.Get(1).([]model.TVShow)
	}).Return(seq(1), nil)
	repo.On("InsertSeasons", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		c.seasons = args.Get(1).([]model.Season)
	}).Return(seq(1), nil)
	repo.On("InsertEpisodes", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		c.episodes = args.Get(1).([]model.Episode)
	}).Return(seq(1), nil)
	repo.On("LinkCredits", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		table := args.Get(1).(repository.CreditTable)
		c.links[table] = append(c.links[table], args.Get(2).([]repository.CreditLink)...)
	}).Return(nil)
	repo.On("InsertMovieRatings", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		c.movieRatings = append(c.movieRatings, args.Get(1).([]model.MovieRating)...)
	}).Return(nil)
	repo.On("InsertEpisodeRatings", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		c.episodeRatings = append(c.episodeRatings, args.Get(1).([]model.EpisodeRating)...)
	}).Return(nil)
	return c
}

func smallOptions() Options {
	return Options{Movies: 6, TVShows: 3, Actors: 30, Directors: 6, Seed: 42}
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())
	assert.NoError(t, Options{}.Validate())
	assert.Error(t, Options{Movies: -1}.Validate())
	assert.Error(t, Options{Movies: 1, Actors: 0, Directors: 1}.Validate())
}

func TestPopulate(t *testing.T) {
	repo := new(repoMocks.MockSeedRepository)
	c := expectAll(repo)

	sum, err := New(repo, logger.Discard()).Populate(context.Background(), smallOptions())
	require.NoError(t, err)
	repo.AssertExpectations(t)

	assert.Equal(t, 6, sum.Movies)
	assert.Equal(t, 3, sum.TVShows)
	assert.Equal(t, 30, sum.Actors)
	assert.Equal(t, 6, sum.Directors)
	assert.Equal(t, len(c.seasons), sum.Seasons)
	assert.Equal(t, len(c.episodes), sum.Episodes)
	assert.Equal(t, len(c.movieRatings), sum.MovieRatings)
	assert.Equal(t, len(c.episodeRatings), sum.EpisodeRatings)
	assert.Equal(t, "Successfully created 6 movies, 3 TV shows, 30 actors, and 6 directors with ratings!", sum.String())

	t.Run("movies", func(t *testing.T) {
		latest := epoch.AddDate(0, 0, 12000)
		for _, m := range c.movies {
			assert.NotEmpty(t, m.Title)
			assert.Contains(t, PosterURLs, m.Poster)
			assert.False(t, m.ReleaseDate.Before(epoch))
			assert.False(t, m.ReleaseDate.After(latest))
			assert.GreaterOrEqual(t, m.Duration, time.Hour)
			assert.Less(t, m.Duration, 4*time.Hour)
			_, err := model.ParseGenre(string(m.Genre))
			assert.NoError(t, err)
		}
	})

	t.Run("credits", func(t *testing.T) {
		perTitle := func(links []repository.CreditLink) map[int64]map[int64]bool {
			out := map[int64]map[int64]bool{}
			for _, l := range links {
				if out[l.TitleID] == nil {
					out[l.TitleID] = map[int64]bool{}
				}
				assert.False(t, out[l.TitleID][l.PersonID], "duplicate credit")
				out[l.TitleID][l.PersonID] = true
			}
			return out
		}
		for id, people := range perTitle(c.links[repository.MovieActors]) {
			assert.True(t, len(people) >= 10 && len(people) <= 20, "movie %d has %d actors", id, len(people))
		}
		for id, people := range perTitle(c.links[repository.MovieDirectors]) {
			assert.True(t, len(people) >= 1 && len(people) <= 4, "movie %d has %d directors", id, len(people))
			for p := range people {
				assert.GreaterOrEqual(t, p, int64(1000))
			}
		}
		assert.Len(t, perTitle(c.links[repository.EpisodeActors]), len(c.episodes))
		assert.Len(t, perTitle(c.links[repository.EpisodeDirectors]), len(c.episodes))
	})

	t.Run("seasons and episodes", func(t *testing.T) {
		byShow := map[int64][]model.Season{}
		for _, s := range c.seasons {
			byShow[s.ShowID] = append(byShow[s.ShowID], s)
		}
		require.Len(t, byShow, 3)
		for i, show := range c.shows {
			seasons := byShow[int64(i+1)]
			assert.True(t, len(seasons) >= 3 && len(seasons) <= 10)
			for n, s := range seasons {
				assert.Equal(t, n+1, s.Number)
				assert.Equal(t, show.StartDate.AddDate(0, 0, 365*n), s.AirDate)
			}
			if show.EndDate != nil {
				assert.True(t, show.EndDate.After(show.StartDate))
			}
		}

		perSeason := map[int64]int{}
		for _, e := range c.episodes {
			perSeason[e.SeasonID]++
			season := c.seasons[e.SeasonID-1]
			assert.Equal(t, season.Number, e.SeasonNumber)
			assert.Equal(t, season.AirDate.AddDate(0, 0, 7*(e.Number-1)), e.AirDate)
			assert.GreaterOrEqual(t, e.Duration, 20*time.Minute)
			assert.LessOrEqual(t, e.Duration, 60*time.Minute)
		}
		for id, n := range perSeason {
			assert.True(t, n >= 5 && n <= 15, "season %d has %d episodes", id, n)
		}
	})

	t.Run("ratings", func(t *testing.T) {
		perMovie := map[int64]int{}
		for _, r := range c.movieRatings {
			assert.NoError(t, model.ValidateScore(r.Score))
			perMovie[r.MovieID]++
		}
		for _, n := range perMovie {
			assert.LessOrEqual(t, n, 100)
		}
		for _, r := range c.episodeRatings {
			assert.NoError(t, model.ValidateScore(r.Score))
		}
	})
}

func TestPopulate_Deterministic(t *testing.T) {
	run := func() *captured {
		repo := new(repoMocks.MockSeedRepository)
		c := expectAll(repo)
		_, err := New(repo, logger.Discard()).Populate(context.Background(), smallOptions())
		require.NoError(t, err)
		return c
	}
	a, b := run(), run()
	assert.Equal(t, a.movies, b.movies)
	assert.Equal(t, a.episodes, b.episodes)
	assert.Equal(t, a.movieRatings, b.movieRatings)
}

func TestPopulate_CustomPosters(t *testing.T) {
	repo := new(repoMocks.MockSeedRepository)
	c := expectAll(repo)

	opts := smallOptions()
	opts.Posters = []string{"posters/one.jpg"}
	_, err := New(repo, logger.Discard()).Populate(context.Background(), opts)
	require.NoError(t, err)

	for _, m := range c.movies {
		assert.Equal(t, "posters/one.jpg", m.Poster)
	}
	for _, s := range c.shows {
		assert.Equal(t, "posters/one.jpg", s.Poster)
	}
}

func TestPopulate_InsertError(t *testing.T) {
	repo := new(repoMocks.MockSeedRepository)
	repo.On("InsertPeople", mock.Anything, mock.Anything, mock.Anything).Return(seq(1), nil)
	repo.On("InsertMovies", mock.Anything, mock.Anything).Return(nil, errors.New("disk full"))

	_, err := New(repo, logger.Discard()).Populate(context.Background(), smallOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert movies: disk full")
	repo.AssertNotCalled(t, "InsertTVShows", mock.Anything, mock.Anything)
}

func TestSample(t *testing.T) {
	p := New(nil, logger.Discard())
	p.rng = rand.New(rand.NewPCG(1, 2))

	ids := []int64{1, 2, 3, 4, 5}
	got := p.sample(ids, 3)
	assert.Len(t, got, 3)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids, "input is not reordered")

	seen := map[int64]bool{}
	for _, id := range got {
		assert.False(t, seen[id])
		seen[id] = true
	}
	assert.ElementsMatch(t, ids, p.sample(ids, 10))
}
