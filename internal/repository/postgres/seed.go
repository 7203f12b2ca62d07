package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"moviedb/internal/model"
	"moviedb/internal/repository"
)

// maxParams is PostgreSQL's limit on bind parameters per statement.
const maxParams = 65535

// SeedPostgres is a PostgreSQL implementation of repository.SeedRepository.
// It is meant to run on a *sql.Tx so a failed seed leaves no partial data.
type SeedPostgres struct {
	db        DBTX
	batchRows int
}

// NewSeedPostgres creates a new SeedPostgres repository.
func NewSeedPostgres(db DBTX) *SeedPostgres {
	return &SeedPostgres{db: db, batchRows: 1000}
}

var _ repository.SeedRepository = (*SeedPostgres)(nil)

// chunk splits n rows of width cols into statement-sized ranges.
func (r *SeedPostgres) chunk(n, cols int) [][2]int {
	size := r.batchRows
	if limit := maxParams / cols; size > limit {
		size = limit
	}
	var out [][2]int
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		out = append(out, [2]int{start, end})
	}
	return out
}

func valuesClause(rows, cols int) string {
	var b strings.Builder
	n := 1
	for i := 0; i < rows; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('(')
		for j := 0; j < cols; j++ {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			n++
		}
		b.WriteByte(')')
	}
	return b.String()
}

const qReserveIDs = `SELECT nextval(pg_get_serial_sequence($1, 'id')) FROM generate_series(1, $2)`

// reserveIDs draws n ids from the id sequence of table.
func (r *SeedPostgres) reserveIDs(ctx context.Context, table string, n int) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, qReserveIDs, table, n)
	if err != nil {
		return nil, fmt.Errorf("reserve %s ids: %w", table, err)
	}
	defer rows.Close()

	ids := make([]int64, 0, n)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) != n {
		return nil, fmt.Errorf("reserve %s ids: got %d, want %d", table, len(ids), n)
	}
	return ids, nil
}

// insert writes rows in batches. With withIDs set, every row is inserted
// under an id reserved from the table's sequence and the ids are returned in
// input order, so callers can link rows by position.
func (r *SeedPostgres) insert(ctx context.Context, table string, cols []string, n int, row func(i int) []any, withIDs bool) ([]int64, error) {
	var ids []int64
	if withIDs {
		ids = make([]int64, 0, n)
		cols = append([]string{"id"}, cols...)
	}
	for _, span := range r.chunk(n, len(cols)) {
		var reserved []int64
		if withIDs {
			var err error
			if reserved, err = r.reserveIDs(ctx, table, span[1]-span[0]); err != nil {
				return nil, err
			}
		}

		args := make([]any, 0, (span[1]-span[0])*len(cols))
		for i := span[0]; i < span[1]; i++ {
			if withIDs {
				args = append(args, reserved[i-span[0]])
			}
			args = append(args, row(i)...)
		}
		q := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s", table, strings.Join(cols, ", "), valuesClause(span[1]-span[0], len(cols)))
		if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
			return nil, fmt.Errorf("insert %s: %w", table, err)
		}
		ids = append(ids, reserved...)
	}
	return ids, nil
}

func (r *SeedPostgres) InsertPeople(ctx context.Context, kind model.PersonKind, people []model.Person) ([]int64, error) {
	return r.insert(ctx, tablesFor(kind).people, []string{"first_name", "last_name"}, len(people), func(i int) []any {
		return []any{people[i].FirstName, people[i].LastName}
	}, true)
}

func (r *SeedPostgres) InsertMovies(ctx context.Context, movies []model.Movie) ([]int64, error) {
	cols := []string{"title", "description", "genre", "release_date", "duration_sec", "poster"}
	return r.insert(ctx, "movies", cols, len(movies), func(i int) []any {
		m := movies[i]
		return []any{m.Title, m.Description, string(m.Genre), m.ReleaseDate, int64(m.Duration.Seconds()), m.Poster}
	}, true)
}

func (r *SeedPostgres) InsertTVShows(ctx context.Context, shows []model.TVShow) ([]int64, error) {
	cols := []string{"title", "description", "genre", "start_date", "end_date", "poster"}
	return r.insert(ctx, "tv_shows", cols, len(shows), func(i int) []any {
		s := shows[i]
		var end any
		if s.EndDate != nil {
			end = *s.EndDate
		}
		return []any{s.Title, s.Description, string(s.Genre), s.StartDate, end, s.Poster}
	}, true)
}

func (r *SeedPostgres) InsertSeasons(ctx context.Context, seasons []model.Season) ([]int64, error) {
	cols := []string{"show_id", "number", "title", "air_date"}
	return r.insert(ctx, "seasons", cols, len(seasons), func(i int) []any {
		s := seasons[i]
		return []any{s.ShowID, s.Number, s.Title, s.AirDate}
	}, true)
}

func (r *SeedPostgres) InsertEpisodes(ctx context.Context, episodes []model.Episode) ([]int64, error) {
	cols := []string{"season_id", "episode_number", "title", "air_date", "description", "duration_sec"}
	return r.insert(ctx, "episodes", cols, len(episodes), func(i int) []any {
		e := episodes[i]
		return []any{e.SeasonID, e.Number, e.Title, e.AirDate, e.Description, int64(e.Duration.Seconds())}
	}, true)
}

// LinkCredits inserts title/person links; a duplicate pair fails the batch.
func (r *SeedPostgres) LinkCredits(ctx context.Context, table repository.CreditTable, links []repository.CreditLink) error {
	var cols []string
	switch table {
	case repository.MovieActors:
		cols = []string{"movie_id", "actor_id"}
	case repository.MovieDirectors:
		cols = []string{"movie_id", "director_id"}
	case repository.EpisodeActors:
		cols = []string{"episode_id", "actor_id"}
	case repository.EpisodeDirectors:
		cols = []string{"episode_id", "director_id"}
	default:
		return fmt.Errorf("unknown credit table %q", table)
	}
	_, err := r.insert(ctx, string(table), cols, len(links), func(i int) []any {
		return []any{links[i].TitleID, links[i].PersonID}
	}, false)
	return err
}

func (r *SeedPostgres) InsertMovieRatings(ctx context.Context, ratings []model.MovieRating) error {
	_, err := r.insert(ctx, "movie_ratings", []string{"movie_id", "rating"}, len(ratings), func(i int) []any {
		return []any{ratings[i].MovieID, ratings[i].Score}
	}, false)
	return err
}

func (r *SeedPostgres) InsertEpisodeRatings(ctx context.Context, ratings []model.EpisodeRating) error {
	_, err := r.insert(ctx, "episode_ratings", []string{"episode_id", "rating"}, len(ratings), func(i int) []any {
		return []any{ratings[i].EpisodeID, ratings[i].Score}
	}, false)
	return err
}
