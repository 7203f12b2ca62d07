package cli

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviedb/internal/config"
)

// run executes moviectl with args against db and returns stdout.
func run(t *testing.T, db *sql.DB, args ...string) (string, error) {
	t.Helper()
	t.Setenv("OTEL_SDK_DISABLED", "true")

	var out, logs bytes.Buffer
	e := newEnv(&out, &logs)
	e.openDB = func(context.Context, config.DatabaseConfig) (*sql.DB, error) {
		if db == nil {
			return nil, errors.New("db unavailable")
		}
		return db, nil
	}
	defer e.close()

	cmd := newRootCmd(e)
	cmd.SetArgs(args)
	cmd.SetErr(&logs)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommandTree(t *testing.T) {
	cmd := newRootCmd(newEnv(&bytes.Buffer{}, &bytes.Buffer{}))

	for _, path := range [][]string{{"migrate"}, {"populate"}, {"report", "actors"}} {
		c, _, err := cmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], c.Name())
	}

	populate, _, _ := cmd.Find([]string{"populate"})
	for flag, want := range map[string]string{"movies": "500", "tv-shows": "250", "actors": "200", "directors": "100", "mirror-posters": "false"} {
		f := populate.Flags().Lookup(flag)
		require.NotNil(t, f, flag)
		assert.Equal(t, want, f.DefValue, flag)
	}

	actors, _, _ := cmd.Find([]string{"report", "actors"})
	assert.Equal(t, "500", actors.Flags().Lookup("limit").DefValue)
	assert.Equal(t, "4", actors.Flags().Lookup("workers").DefValue)
	assert.Equal(t, "o", actors.Flags().Lookup("output").Shorthand)
}

func TestMigrate_DBError(t *testing.T) {
	_, err := run(t, nil, "migrate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db unavailable")
}

func TestPopulate_InvalidCounts(t *testing.T) {
	_, err := run(t, nil, "populate", "--movies", "-1")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "db unavailable", "options are checked before connecting")
}

func TestPopulate_MirrorNeedsStorage(t *testing.T) {
	t.Setenv("MINIO_ENDPOINT", "")
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	_, err = run(t, db, "populate", "--mirror-posters")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MINIO_ENDPOINT")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReportActors(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		mock.ExpectQuery(`SELECT id FROM actors ORDER BY id LIMIT \$1`).
			WithArgs(3).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectClose()

		out, err := run(t, db, "report", "actors", "--limit", "3")
		require.NoError(t, err)
		assert.Contains(t, out, "Starting Actor Rating Analysis...\n")
		assert.Contains(t, out, "ACTOR RATING ANALYSIS REPORT")
		assert.Contains(t, out, "Total Actors Analyzed: 0")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("output file", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		mock.ExpectQuery(`SELECT id FROM actors ORDER BY id LIMIT \$1`).
			WithArgs(nil).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectClose()

		path := filepath.Join(t.TempDir(), "actors.txt")
		out, err := run(t, db, "report", "actors", "--limit", "-1", "-o", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Report written to "+path)
		assert.NotContains(t, out, "SUMMARY:")

		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(b), "SUMMARY:")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
