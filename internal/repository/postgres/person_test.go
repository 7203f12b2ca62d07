package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"moviedb/internal/model"
	"moviedb/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPersonPostgres(db, model.KindActor)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM actors p WHERE \(p.first_name ILIKE \$1 OR p.last_name ILIKE \$1\)`).
		WithArgs("%han%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`FROM movie_actors l WHERE l.actor_id = p.id(.+)FROM episode_actors l(.+)FROM actors p WHERE (.+) ORDER BY p.first_name, p.last_name, p.id LIMIT \$2 OFFSET \$3`).
		WithArgs("%han%", 20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "full_name", "movie_count", "tv_episode_count"}).
			AddRow(1, "Tom", "Hanks", "Tom Hanks", 14, 30))

	res, err := repo.List(context.Background(), "han", repository.PageQuery{Limit: 20})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	require.Len(t, res.Items, 1)
	assert.Equal(t, 14, res.Items[0].MovieCount)
	assert.Equal(t, 30, res.Items[0].EpisodeCount)
	assert.Equal(t, model.KindActor, res.Items[0].Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPersonPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPersonPostgres(db, model.KindDirector)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`COUNT\(DISTINCT s.show_id\) FROM episode_directors l (.+) FROM directors p WHERE p.id = \$1`).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "full_name", "total_movies", "total_tv_shows"}).
				AddRow(3, "Nora", "Ephron", "Nora Ephron", 4, 2))

		d, err := repo.FindByID(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, "Nora Ephron", d.Name())
		assert.Equal(t, 4, d.TotalMovies)
		assert.Equal(t, 2, d.TotalTVShows)
		assert.NotNil(t, d.Movies)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM directors p WHERE p.id = \$1`).
			WithArgs(int64(4)).
			WillReturnError(sql.ErrNoRows)

		d, err := repo.FindByID(ctx, 4)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, d)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPersonPostgres_Credits(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPersonPostgres(db, model.KindActor)
	ctx := context.Background()

	mock.ExpectQuery(`FROM movies m (.+)SELECT 1 FROM movie_actors l WHERE l.movie_id = m.id AND l.actor_id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(movieSummaryColumns).AddRow(9, "Big", "COMEDY", time.Now(), "", nil, 0))
	mock.ExpectQuery(`FROM tv_shows t (.+)SELECT 1 FROM episode_actors l (.+) WHERE s.show_id = t.id AND l.actor_id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(movieSummaryColumns))

	movies, err := repo.Movies(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, movies, 1)

	shows, err := repo.TVShows(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, shows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPersonPostgres_Search(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, first_name, last_name, full_name FROM directors WHERE (.+) LIMIT \$2`).
		WithArgs("%nolan%", 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "full_name"}).
			AddRow(2, "Christopher", "Nolan", "Christopher Nolan"))

	people, err := NewPersonPostgres(db, model.KindDirector).Search(context.Background(), "nolan", 10)

	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, model.KindDirector, people[0].Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingPostgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewRatingPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO movie_ratings`).
		WithArgs(int64(1), 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "movie_id", "rating"}).AddRow(77, 1, 5))
	mock.ExpectQuery(`INSERT INTO episode_ratings`).
		WithArgs(int64(404), 3).
		WillReturnError(sql.ErrNoRows)

	mr, err := repo.AddMovieRating(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(77), mr.ID)
	assert.Equal(t, 5, mr.Score)

	er, err := repo.AddEpisodeRating(ctx, 404, 3)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Nil(t, er)

	assert.NoError(t, mock.ExpectationsWereMet())
}
