package postgres

import (
	"context"
	"testing"
	"time"

	"moviedb/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportPostgres_ActorIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewReportPostgres(db)

	mock.ExpectQuery(`SELECT id FROM actors ORDER BY id LIMIT \$1`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
	mock.ExpectQuery(`SELECT id FROM actors ORDER BY id LIMIT \$1`).
		WithArgs(nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ids, err := repo.ActorIDs(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)

	ids, err = repo.ActorIDs(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, ids)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportPostgres_ActorStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	first := time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM actors WHERE id = ANY`).
		WithArgs("{1,2}").
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "full_name"}).
			AddRow(1, "Tom", "Hanks", "Tom Hanks").
			AddRow(2, "Meg", "Ryan", "Meg Ryan"))
	mock.ExpectQuery(`FROM movie_actors ma JOIN movies m`).
		WithArgs("{1,2}").
		WillReturnRows(sqlmock.NewRows([]string{"actor_id", "count", "min", "max"}).
			AddRow(1, 3, first, last))
	mock.ExpectQuery(`FROM episode_actors ea JOIN episodes e`).
		WithArgs("{1,2}").
		WillReturnRows(sqlmock.NewRows([]string{"actor_id", "count", "min", "max"}).
			AddRow(2, 5, first, first))
	mock.ExpectQuery(`FROM movie_actors ma JOIN movie_ratings mr`).
		WithArgs("{1,2}").
		WillReturnRows(sqlmock.NewRows([]string{"actor_id", "rating", "count"}).
			AddRow(1, 5, 4).
			AddRow(1, 3, 2))
	mock.ExpectQuery(`FROM episode_actors ea JOIN episode_ratings er`).
		WithArgs("{1,2}").
		WillReturnRows(sqlmock.NewRows([]string{"actor_id", "rating", "count"}).
			AddRow(2, 1, 7))

	stats, err := NewReportPostgres(db).ActorStats(context.Background(), []int64{1, 2})

	require.NoError(t, err)
	require.Len(t, stats, 2)

	tom := stats[0]
	assert.Equal(t, "Tom Hanks", tom.Actor.Name())
	assert.Equal(t, 3, tom.MovieCount)
	assert.Equal(t, 0, tom.EpisodeCount)
	assert.Equal(t, [model.MaxScore]int{0, 0, 2, 0, 4}, tom.MovieDistribution)
	require.NotNil(t, tom.FirstMovie)
	assert.Equal(t, first, *tom.FirstMovie)
	assert.Equal(t, last, *tom.LastMovie)
	assert.Nil(t, tom.FirstEpisode)

	meg := stats[1]
	assert.Equal(t, 5, meg.EpisodeCount)
	assert.Equal(t, [model.MaxScore]int{7, 0, 0, 0, 0}, meg.EpisodeDistribution)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportPostgres_ActorGenres(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	cols := []string{"actor_id", "genre", "titles", "sum", "count"}
	mock.ExpectQuery(`FROM movie_actors ma JOIN movies m (.+) GROUP BY ma.actor_id, m.genre`).
		WithArgs("{1}").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "DRAMA", 2, 20, 5).
			AddRow(1, "COMEDY", 1, 0, 0))
	mock.ExpectQuery(`JOIN tv_shows t (.+) GROUP BY ea.actor_id, t.genre`).
		WithArgs("{1}").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "DRAMA", 4, 8, 2))

	genres, err := NewReportPostgres(db).ActorGenres(context.Background(), []int64{1})

	require.NoError(t, err)
	require.Len(t, genres[1], 2)
	drama := genres[1][0]
	assert.Equal(t, model.GenreDrama, drama.Genre)
	assert.Equal(t, 2, drama.Movies)
	assert.Equal(t, 4, drama.Episodes)
	assert.Equal(t, 28, drama.RatingSum)
	assert.Equal(t, 7, drama.RatingCount)
	assert.Equal(t, model.GenreComedy, genres[1][1].Genre)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportPostgres_ActorCollaborators(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewReportPostgres(db)

	mock.ExpectQuery(`WITH pairs AS (.+) WHERE rn <= \$2`).
		WithArgs("{1,2}", 3).
		WillReturnRows(sqlmock.NewRows([]string{"actor_id", "name", "director", "n"}).
			AddRow(1, "Meg Ryan", false, 3).
			AddRow(1, "Nora Ephron", true, 2).
			AddRow(2, "Tom Hanks", false, 3))

	collab, err := repo.ActorCollaborators(context.Background(), []int64{1, 2}, 3)

	require.NoError(t, err)
	require.Len(t, collab[1], 2)
	assert.True(t, collab[1][1].Director)
	assert.Equal(t, 3, collab[2][0].Count)
	assert.NoError(t, mock.ExpectationsWereMet())

	none, err := repo.ActorCollaborators(context.Background(), []int64{1}, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}
