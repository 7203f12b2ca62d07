package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"moviedb/internal/model"
)

// DBTX is the subset of *sql.DB and *sql.Tx the repositories need.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

// int64Array renders ids as a PostgreSQL array literal for use with $n::bigint[].
func int64Array(ids []int64) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(id, 10))
	}
	b.WriteByte('}')
	return b.String()
}

// likePattern wraps s for a substring ILIKE match, escaping wildcards.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// conds accumulates AND-ed SQL conditions with positional arguments.
type conds struct {
	parts []string
	args  []any
}

// add appends a condition; every "?" in expr is replaced by the next placeholder
// bound to the same argument.
func (c *conds) add(expr string, arg any) {
	c.args = append(c.args, arg)
	c.parts = append(c.parts, strings.ReplaceAll(expr, "?", "$"+strconv.Itoa(len(c.args))))
}

func (c *conds) where() string {
	if len(c.parts) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.parts, " AND ")
}

// next returns the placeholder following the accumulated arguments.
func (c *conds) next(offset int) string {
	return "$" + strconv.Itoa(len(c.args)+offset)
}

func yearStart(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func rating(avg sql.NullFloat64, count int) model.Rating {
	if !avg.Valid {
		return model.Rating{}
	}
	v := avg.Float64
	return model.NewRating(&v, count)
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

type rowScanner interface {
	Scan(dest ...any) error
}

// Listing columns shared by every movie summary query. The rating lateral is aliased r.
const movieSummaryCols = `m.id, m.title, m.genre, m.release_date, m.poster, r.avg_rating, r.rating_count`

const movieRatingLateral = `LEFT JOIN LATERAL (
		SELECT AVG(mr.rating)::float8 AS avg_rating, COUNT(*) AS rating_count
		FROM movie_ratings mr
		WHERE mr.movie_id = m.id
	) r ON true`

func scanMovieSummary(s rowScanner) (model.MovieSummary, error) {
	var (
		m     model.MovieSummary
		genre string
		avg   sql.NullFloat64
		count int
	)
	if err := s.Scan(&m.ID, &m.Title, &genre, &m.ReleaseDate, &m.Poster, &avg, &count); err != nil {
		return model.MovieSummary{}, err
	}
	m.Genre = model.Genre(genre)
	m.Rating = rating(avg, count)
	return m, nil
}

func collectMovieSummaries(rows *sql.Rows) ([]model.MovieSummary, error) {
	defer rows.Close()
	items := make([]model.MovieSummary, 0)
	for rows.Next() {
		m, err := scanMovieSummary(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const showSummaryCols = `t.id, t.title, t.genre, t.start_date, t.poster, r.avg_rating, r.rating_count`

const showRatingLateral = `LEFT JOIN LATERAL (
		SELECT AVG(er.rating)::float8 AS avg_rating, COUNT(er.id) AS rating_count
		FROM seasons s
		JOIN episodes e ON e.season_id = s.id
		JOIN episode_ratings er ON er.episode_id = e.id
		WHERE s.show_id = t.id
	) r ON true`

func scanShowSummary(s rowScanner) (model.TVShowSummary, error) {
	var (
		t     model.TVShowSummary
		genre string
		avg   sql.NullFloat64
		count int
	)
	if err := s.Scan(&t.ID, &t.Title, &genre, &t.StartDate, &t.Poster, &avg, &count); err != nil {
		return model.TVShowSummary{}, err
	}
	t.Genre = model.Genre(genre)
	t.Rating = rating(avg, count)
	return t, nil
}

func collectShowSummaries(rows *sql.Rows) ([]model.TVShowSummary, error) {
	defer rows.Close()
	items := make([]model.TVShowSummary, 0)
	for rows.Next() {
		t, err := scanShowSummary(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func collectPeople(rows *sql.Rows, kind model.PersonKind) ([]model.Person, error) {
	defer rows.Close()
	items := make([]model.Person, 0)
	for rows.Next() {
		p := model.Person{Kind: kind}
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.FullName); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func secondsToDuration(sec int64) time.Duration {
	return time.Duration(sec) * time.Second
}
