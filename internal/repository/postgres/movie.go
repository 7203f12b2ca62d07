package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"moviedb/internal/model"
	"moviedb/internal/repository"
)

// MoviePostgres is a PostgreSQL implementation of repository.MovieRepository.
// Ratings are aggregated in SQL; credits are batch-loaded per page.
type MoviePostgres struct {
	db DBTX
}

// NewMoviePostgres creates a new MoviePostgres repository.
func NewMoviePostgres(db DBTX) *MoviePostgres {
	return &MoviePostgres{db: db}
}

var _ repository.MovieRepository = (*MoviePostgres)(nil)

func movieFilter(f repository.TitleFilter) *conds {
	c := &conds{}
	if f.Genre != "" {
		c.add("m.genre = ?", string(f.Genre))
	}
	if f.Search != "" {
		c.add(`(m.title ILIKE ? OR m.description ILIKE ?
			OR EXISTS (
				SELECT 1 FROM movie_actors ma JOIN actors a ON a.id = ma.actor_id
				WHERE ma.movie_id = m.id AND (a.first_name ILIKE ? OR a.last_name ILIKE ?))
			OR EXISTS (
				SELECT 1 FROM movie_directors md JOIN directors d ON d.id = md.director_id
				WHERE md.movie_id = m.id AND (d.first_name ILIKE ? OR d.last_name ILIKE ?)))`,
			likePattern(f.Search))
	}
	return c
}

func movieOrder(s repository.Sort) string {
	switch s {
	case repository.SortRating:
		return "r.avg_rating DESC NULLS LAST, m.id"
	case repository.SortReleaseDate:
		return "m.release_date DESC, m.id"
	default:
		return "m.title, m.id"
	}
}

// List returns movies using LIMIT/OFFSET pagination and a total count.
func (r *MoviePostgres) List(ctx context.Context, f repository.TitleFilter, pq repository.PageQuery) (*repository.PageResult[model.MovieSummary], error) {
	c := movieFilter(f)

	var total int
	qCount := `SELECT COUNT(*) FROM movies m` + c.where()
	if err := r.db.QueryRowContext(ctx, qCount, c.args...).Scan(&total); err != nil {
		return nil, err
	}

	qList := fmt.Sprintf(`SELECT %s FROM movies m %s%s ORDER BY %s LIMIT %s OFFSET %s`,
		movieSummaryCols, movieRatingLateral, c.where(), movieOrder(f.Sort), c.next(1), c.next(2))
	rows, err := r.db.QueryContext(ctx, qList, append(c.args, pq.Limit, pq.Offset)...)
	if err != nil {
		return nil, err
	}
	items, err := collectMovieSummaries(rows)
	if err != nil {
		return nil, err
	}

	return &repository.PageResult[model.MovieSummary]{
		Items: items,
		Total: total,
	}, nil
}

// FindByID fetches a single movie by its ID.
func (r *MoviePostgres) FindByID(ctx context.Context, id int64) (*model.Movie, error) {
	q := `SELECT m.id, m.title, m.description, m.genre, m.release_date, m.duration_sec, m.poster,
		r.avg_rating, r.rating_count
		FROM movies m ` + movieRatingLateral + `
		WHERE m.id = $1`

	var (
		m        model.Movie
		genre    string
		duration int64
		avg      sql.NullFloat64
		count    int
	)
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&m.ID, &m.Title, &m.Description, &genre, &m.ReleaseDate, &duration, &m.Poster, &avg, &count,
	)
	if err != nil {
		return nil, err
	}
	m.Genre = model.Genre(genre)
	m.Duration = secondsToDuration(duration)
	m.Rating = rating(avg, count)
	return &m, nil
}

// Featured returns the best rated movies at or above minAvg.
func (r *MoviePostgres) Featured(ctx context.Context, minAvg float64, limit int) ([]model.MovieSummary, error) {
	const q = `
		SELECT m.id, m.title, m.genre, m.release_date, m.poster, r.avg_rating, r.rating_count
		FROM movies m
		JOIN (
			SELECT movie_id, AVG(rating)::float8 AS avg_rating, COUNT(*) AS rating_count
			FROM movie_ratings
			GROUP BY movie_id
			HAVING AVG(rating) >= $1
		) r ON r.movie_id = m.id
		ORDER BY r.avg_rating DESC, m.id
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, q, minAvg, limit)
	if err != nil {
		return nil, err
	}
	return collectMovieSummaries(rows)
}

// Latest returns movies ordered by release date, newest first.
func (r *MoviePostgres) Latest(ctx context.Context, limit int) ([]model.MovieSummary, error) {
	q := `SELECT ` + movieSummaryCols + ` FROM movies m ` + movieRatingLateral + `
		ORDER BY m.release_date DESC, m.id
		LIMIT $1`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	return collectMovieSummaries(rows)
}

// Similar returns other movies of the same genre.
func (r *MoviePostgres) Similar(ctx context.Context, genre model.Genre, excludeID int64, limit int) ([]model.MovieSummary, error) {
	q := `SELECT ` + movieSummaryCols + ` FROM movies m ` + movieRatingLateral + `
		WHERE m.genre = $1 AND m.id <> $2
		ORDER BY m.release_date DESC, m.id
		LIMIT $3`
	rows, err := r.db.QueryContext(ctx, q, string(genre), excludeID, limit)
	if err != nil {
		return nil, err
	}
	return collectMovieSummaries(rows)
}

// Credits loads actors and directors for many movies in two queries.
func (r *MoviePostgres) Credits(ctx context.Context, movieIDs []int64) (map[int64]model.Credits, error) {
	out := make(map[int64]model.Credits, len(movieIDs))
	if len(movieIDs) == 0 {
		return out, nil
	}
	for _, id := range movieIDs {
		out[id] = model.Credits{Actors: []model.Person{}, Directors: []model.Person{}}
	}
	ids := int64Array(movieIDs)

	const qActors = `
		SELECT ma.movie_id, a.id, a.first_name, a.last_name, a.full_name
		FROM movie_actors ma
		JOIN actors a ON a.id = ma.actor_id
		WHERE ma.movie_id = ANY($1::bigint[])
		ORDER BY ma.movie_id, a.last_name, a.first_name, a.id
	`
	if err := r.loadCredits(ctx, qActors, ids, model.KindActor, out); err != nil {
		return nil, err
	}

	const qDirectors = `
		SELECT md.movie_id, d.id, d.first_name, d.last_name, d.full_name
		FROM movie_directors md
		JOIN directors d ON d.id = md.director_id
		WHERE md.movie_id = ANY($1::bigint[])
		ORDER BY md.movie_id, d.last_name, d.first_name, d.id
	`
	if err := r.loadCredits(ctx, qDirectors, ids, model.KindDirector, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MoviePostgres) loadCredits(ctx context.Context, q, ids string, kind model.PersonKind, out map[int64]model.Credits) error {
	rows, err := r.db.QueryContext(ctx, q, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var movieID int64
		p := model.Person{Kind: kind}
		if err := rows.Scan(&movieID, &p.ID, &p.FirstName, &p.LastName, &p.FullName); err != nil {
			return err
		}
		c := out[movieID]
		if kind == model.KindActor {
			c.Actors = append(c.Actors, p)
		} else {
			c.Directors = append(c.Directors, p)
		}
		out[movieID] = c
	}
	return rows.Err()
}

// Search matches title and description and applies rating and year bounds.
func (r *MoviePostgres) Search(ctx context.Context, f repository.SearchFilter, limit int) ([]model.MovieSummary, error) {
	c := &conds{}
	c.add("(m.title ILIKE ? OR m.description ILIKE ?)", likePattern(f.Query))
	if f.MinRating != nil {
		c.add("r.avg_rating >= ?", *f.MinRating)
	}
	if f.MaxRating != nil {
		c.add("r.avg_rating <= ?", *f.MaxRating)
	}
	if f.YearFrom != nil {
		c.add("m.release_date >= ?", yearStart(*f.YearFrom))
	}
	if f.YearTo != nil {
		c.add("m.release_date < ?", yearStart(*f.YearTo+1))
	}

	q := fmt.Sprintf(`SELECT %s FROM movies m %s%s ORDER BY m.title, m.id LIMIT %s`,
		movieSummaryCols, movieRatingLateral, c.where(), c.next(1))
	rows, err := r.db.QueryContext(ctx, q, append(c.args, limit)...)
	if err != nil {
		return nil, err
	}
	return collectMovieSummaries(rows)
}

// SetPoster updates the poster reference of a movie.
func (r *MoviePostgres) SetPoster(ctx context.Context, id int64, poster string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE movies SET poster = $2 WHERE id = $1`, id, poster)
	if err != nil {
		return err
	}
	return checkAffected(res)
}
