package migration

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"moviedb/internal/database"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_actors",
		SQL: `CREATE TABLE IF NOT EXISTS actors (
  id         BIGSERIAL    PRIMARY KEY,
  first_name VARCHAR(100) NOT NULL,
  last_name  VARCHAR(100) NOT NULL,
  full_name  VARCHAR(201) GENERATED ALWAYS AS (first_name || ' ' || last_name) STORED
);`,
	},
	{
		Name: "create_table_directors",
		SQL: `CREATE TABLE IF NOT EXISTS directors (
  id         BIGSERIAL    PRIMARY KEY,
  first_name VARCHAR(100) NOT NULL,
  last_name  VARCHAR(100) NOT NULL,
  full_name  VARCHAR(201) GENERATED ALWAYS AS (first_name || ' ' || last_name) STORED
);`,
	},
	{
		Name: "create_table_movies",
		SQL: `CREATE TABLE IF NOT EXISTS movies (
  id           BIGSERIAL    PRIMARY KEY,
  title        VARCHAR(255) NOT NULL,
  description  TEXT         NOT NULL,
  genre        VARCHAR(20)  NOT NULL,
  release_date DATE         NOT NULL,
  duration_sec INTEGER      NOT NULL CHECK (duration_sec > 0),
  poster       TEXT         NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_table_movie_actors",
		SQL: `CREATE TABLE IF NOT EXISTS movie_actors (
  movie_id BIGINT NOT NULL REFERENCES movies (id) ON DELETE CASCADE,
  actor_id BIGINT NOT NULL REFERENCES actors (id) ON DELETE CASCADE,
  PRIMARY KEY (movie_id, actor_id)
);`,
	},
	{
		Name: "create_table_movie_directors",
		SQL: `CREATE TABLE IF NOT EXISTS movie_directors (
  movie_id    BIGINT NOT NULL REFERENCES movies (id) ON DELETE CASCADE,
  director_id BIGINT NOT NULL REFERENCES directors (id) ON DELETE CASCADE,
  PRIMARY KEY (movie_id, director_id)
);`,
	},
	{
		Name: "create_table_movie_ratings",
		SQL: `CREATE TABLE IF NOT EXISTS movie_ratings (
  id       BIGSERIAL PRIMARY KEY,
  movie_id BIGINT    NOT NULL REFERENCES movies (id) ON DELETE CASCADE,
  rating   SMALLINT  NOT NULL CHECK (rating BETWEEN 1 AND 5)
);`,
	},
	{
		Name: "create_table_tv_shows",
		SQL: `CREATE TABLE IF NOT EXISTS tv_shows (
  id          BIGSERIAL    PRIMARY KEY,
  title       VARCHAR(255) NOT NULL,
  description TEXT         NOT NULL,
  genre       VARCHAR(20)  NOT NULL,
  start_date  DATE         NOT NULL,
  end_date    DATE,
  poster      TEXT         NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_table_seasons",
		SQL: `CREATE TABLE IF NOT EXISTS seasons (
  id       BIGSERIAL    PRIMARY KEY,
  show_id  BIGINT       NOT NULL REFERENCES tv_shows (id) ON DELETE CASCADE,
  number   SMALLINT     NOT NULL CHECK (number >= 0),
  title    VARCHAR(255) NOT NULL DEFAULT '',
  air_date DATE         NOT NULL,
  UNIQUE (show_id, number)
);`,
	},
	{
		Name: "create_table_episodes",
		SQL: `CREATE TABLE IF NOT EXISTS episodes (
  id             BIGSERIAL    PRIMARY KEY,
  season_id      BIGINT       NOT NULL REFERENCES seasons (id) ON DELETE CASCADE,
  title          VARCHAR(255) NOT NULL,
  episode_number SMALLINT     NOT NULL CHECK (episode_number >= 0),
  air_date       DATE         NOT NULL,
  description    TEXT         NOT NULL,
  duration_sec   INTEGER      NOT NULL CHECK (duration_sec > 0),
  CONSTRAINT unique_episode_number_per_season UNIQUE (season_id, episode_number)
);`,
	},
	{
		Name: "create_table_episode_actors",
		SQL: `CREATE TABLE IF NOT EXISTS episode_actors (
  episode_id BIGINT NOT NULL REFERENCES episodes (id) ON DELETE CASCADE,
  actor_id   BIGINT NOT NULL REFERENCES actors (id) ON DELETE CASCADE,
  PRIMARY KEY (episode_id, actor_id)
);`,
	},
	{
		Name: "create_table_episode_directors",
		SQL: `CREATE TABLE IF NOT EXISTS episode_directors (
  episode_id  BIGINT NOT NULL REFERENCES episodes (id) ON DELETE CASCADE,
  director_id BIGINT NOT NULL REFERENCES directors (id) ON DELETE CASCADE,
  PRIMARY KEY (episode_id, director_id)
);`,
	},
	{
		Name: "create_table_episode_ratings",
		SQL: `CREATE TABLE IF NOT EXISTS episode_ratings (
  id         BIGSERIAL PRIMARY KEY,
  episode_id BIGINT    NOT NULL REFERENCES episodes (id) ON DELETE CASCADE,
  rating     SMALLINT  NOT NULL CHECK (rating BETWEEN 1 AND 5)
);`,
	},
	// Link tables are keyed (title, person); the reverse lookups need their own index.
	{
		Name: "create_index_movie_actors_actor_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_movie_actors_actor_id ON movie_actors (actor_id);`,
	},
	{
		Name: "create_index_movie_directors_director_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_movie_directors_director_id ON movie_directors (director_id);`,
	},
	{
		Name: "create_index_episode_actors_actor_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_episode_actors_actor_id ON episode_actors (actor_id);`,
	},
	{
		Name: "create_index_episode_directors_director_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_episode_directors_director_id ON episode_directors (director_id);`,
	},
	{
		Name: "create_index_movie_ratings_movie_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_movie_ratings_movie_id ON movie_ratings (movie_id);`,
	},
	{
		Name: "create_index_episode_ratings_episode_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_episode_ratings_episode_id ON episode_ratings (episode_id);`,
	},
	{
		Name: "create_index_episodes_season_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_episodes_season_id ON episodes (season_id);`,
	},
	{
		Name: "create_index_movies_genre",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_movies_genre ON movies (genre);`,
	},
	{
		Name: "create_index_movies_release_date",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_movies_release_date ON movies (release_date DESC);`,
	},
	{
		Name: "create_index_movies_title",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_movies_title ON movies (title);`,
	},
	{
		Name: "create_index_tv_shows_genre",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_tv_shows_genre ON tv_shows (genre);`,
	},
	{
		Name: "create_index_tv_shows_start_date",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_tv_shows_start_date ON tv_shows (start_date DESC);`,
	},
	{
		Name: "create_index_tv_shows_title",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_tv_shows_title ON tv_shows (title);`,
	},
	{
		Name: "create_index_actors_first_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_actors_first_name ON actors (first_name);`,
	},
	{
		Name: "create_index_directors_first_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_directors_first_name ON directors (first_name);`,
	},
}

// Steps returns the names of the migration steps in execution order.
func Steps() []string {
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Name
	}
	return names
}

// EnsureMigrated runs every step in one transaction unless the 'movies' table
// already exists. A failed run leaves no tables behind, so the next start
// migrates from scratch instead of skipping a half-built schema.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *slog.Logger, dbHost string) error {
	start := time.Now()
	log = log.With("component", "database", "db_host", dbHost)

	log.Info("db_migration_check", "status", "starting")

	var exists bool
	query := "SELECT to_regclass('public.movies') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			"status", "error",
			"error_message", fmt.Sprintf("failed to check sentinel table: %v", err),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			"status", "success",
			"detail", "schema already exists, skipping migration",
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}

	log.Info("db_migration_start", "status", "in_progress")

	err := database.WithTx(ctx, db, func(tx *sql.Tx) error {
		for _, step := range steps {
			stepStart := time.Now()
			if _, err := tx.ExecContext(ctx, step.SQL); err != nil {
				log.Error("db_migration_failed",
					"status", "error",
					"migration_step", step.Name,
					"error_message", err.Error(),
					"duration_ms", time.Since(start).Milliseconds(),
					"step_duration_ms", time.Since(stepStart).Milliseconds(),
				)
				return fmt.Errorf("migration step %s failed: %w", step.Name, err)
			}

			log.Debug("db_migration_step",
				"status", "success",
				"migration_step", step.Name,
				"step_duration_ms", time.Since(stepStart).Milliseconds(),
			)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("db_migration_success",
		"status", "success",
		"steps", len(steps),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return nil
}
