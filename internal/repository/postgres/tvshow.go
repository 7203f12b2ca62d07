package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"moviedb/internal/model"
	"moviedb/internal/repository"
)

// TVShowPostgres is a PostgreSQL implementation of repository.TVShowRepository.
type TVShowPostgres struct {
	db DBTX
}

// NewTVShowPostgres creates a new TVShowPostgres repository.
func NewTVShowPostgres(db DBTX) *TVShowPostgres {
	return &TVShowPostgres{db: db}
}

var _ repository.TVShowRepository = (*TVShowPostgres)(nil)

func showOrder(s repository.Sort) string {
	switch s {
	case repository.SortRating:
		return "r.avg_rating DESC NULLS LAST, t.id"
	case repository.SortStartDate, repository.SortReleaseDate:
		return "t.start_date DESC, t.id"
	default:
		return "t.title, t.id"
	}
}

// List returns shows using LIMIT/OFFSET pagination and a total count.
func (r *TVShowPostgres) List(ctx context.Context, f repository.TitleFilter, pq repository.PageQuery) (*repository.PageResult[model.TVShowSummary], error) {
	c := &conds{}
	if f.Genre != "" {
		c.add("t.genre = ?", string(f.Genre))
	}
	if f.Search != "" {
		c.add("(t.title ILIKE ? OR t.description ILIKE ?)", likePattern(f.Search))
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tv_shows t`+c.where(), c.args...).Scan(&total); err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`SELECT %s FROM tv_shows t %s%s ORDER BY %s LIMIT %s OFFSET %s`,
		showSummaryCols, showRatingLateral, c.where(), showOrder(f.Sort), c.next(1), c.next(2))
	rows, err := r.db.QueryContext(ctx, q, append(c.args, pq.Limit, pq.Offset)...)
	if err != nil {
		return nil, err
	}
	items, err := collectShowSummaries(rows)
	if err != nil {
		return nil, err
	}

	return &repository.PageResult[model.TVShowSummary]{
		Items: items,
		Total: total,
	}, nil
}

// FindByID fetches a single show without its rating.
func (r *TVShowPostgres) FindByID(ctx context.Context, id int64) (*model.TVShow, error) {
	const q = `
		SELECT id, title, description, genre, start_date, end_date, poster
		FROM tv_shows
		WHERE id = $1
	`
	var (
		t     model.TVShow
		genre string
		end   sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, q, id).Scan(&t.ID, &t.Title, &t.Description, &genre, &t.StartDate, &end, &t.Poster)
	if err != nil {
		return nil, err
	}
	t.Genre = model.Genre(genre)
	t.EndDate = nullTime(end)
	return &t, nil
}

// Featured returns the best rated shows at or above minAvg.
func (r *TVShowPostgres) Featured(ctx context.Context, minAvg float64, limit int) ([]model.TVShowSummary, error) {
	const q = `
		SELECT t.id, t.title, t.genre, t.start_date, t.poster, r.avg_rating, r.rating_count
		FROM tv_shows t
		JOIN (
			SELECT s.show_id, AVG(er.rating)::float8 AS avg_rating, COUNT(*) AS rating_count
			FROM episode_ratings er
			JOIN episodes e ON e.id = er.episode_id
			JOIN seasons s ON s.id = e.season_id
			GROUP BY s.show_id
			HAVING AVG(er.rating) >= $1
		) r ON r.show_id = t.id
		ORDER BY r.avg_rating DESC, t.id
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, q, minAvg, limit)
	if err != nil {
		return nil, err
	}
	return collectShowSummaries(rows)
}

// Latest returns shows ordered by start date, newest first.
func (r *TVShowPostgres) Latest(ctx context.Context, limit int) ([]model.TVShowSummary, error) {
	q := `SELECT ` + showSummaryCols + ` FROM tv_shows t ` + showRatingLateral + `
		ORDER BY t.start_date DESC, t.id
		LIMIT $1`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	return collectShowSummaries(rows)
}

// Similar returns other shows of the same genre.
func (r *TVShowPostgres) Similar(ctx context.Context, genre model.Genre, excludeID int64, limit int) ([]model.TVShowSummary, error) {
	q := `SELECT ` + showSummaryCols + ` FROM tv_shows t ` + showRatingLateral + `
		WHERE t.genre = $1 AND t.id <> $2
		ORDER BY t.start_date DESC, t.id
		LIMIT $3`
	rows, err := r.db.QueryContext(ctx, q, string(genre), excludeID, limit)
	if err != nil {
		return nil, err
	}
	return collectShowSummaries(rows)
}

// Seasons aggregates episode counts and ratings per season in one query.
func (r *TVShowPostgres) Seasons(ctx context.Context, showID int64) ([]model.Season, error) {
	const q = `
		SELECT s.id, s.show_id, s.number, s.title, s.air_date,
			COUNT(e.id) AS episode_count,
			AVG(er.avg_rating)::float8 AS avg_rating,
			COALESCE(SUM(er.rating_count), 0) AS rating_count
		FROM seasons s
		LEFT JOIN episodes e ON e.season_id = s.id
		LEFT JOIN LATERAL (
			SELECT AVG(x.rating)::float8 AS avg_rating, COUNT(*) AS rating_count
			FROM episode_ratings x
			WHERE x.episode_id = e.id
		) er ON true
		WHERE s.show_id = $1
		GROUP BY s.id
		ORDER BY s.number
	`
	rows, err := r.db.QueryContext(ctx, q, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Season, 0)
	for rows.Next() {
		var (
			s     model.Season
			avg   sql.NullFloat64
			count int
		)
		if err := rows.Scan(&s.ID, &s.ShowID, &s.Number, &s.Title, &s.AirDate, &s.EpisodeCount, &avg, &count); err != nil {
			return nil, err
		}
		s.Rating = rating(avg, count)
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Episodes returns one page of a season. A missing season yields sql.ErrNoRows;
// an existing season without episodes yields an empty page.
func (r *TVShowPostgres) Episodes(ctx context.Context, showID int64, seasonNumber int, pq repository.PageQuery) (*repository.PageResult[model.Episode], error) {
	const qCount = `
		SELECT COUNT(*)
		FROM episodes e
		JOIN seasons s ON s.id = e.season_id
		WHERE s.show_id = $1 AND s.number = $2
	`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, showID, seasonNumber).Scan(&total); err != nil {
		return nil, err
	}
	if total == 0 {
		var exists bool
		const qExists = `SELECT EXISTS (SELECT 1 FROM seasons WHERE show_id = $1 AND number = $2)`
		if err := r.db.QueryRowContext(ctx, qExists, showID, seasonNumber).Scan(&exists); err != nil {
			return nil, err
		}
		if !exists {
			return nil, sql.ErrNoRows
		}
		return &repository.PageResult[model.Episode]{Items: []model.Episode{}}, nil
	}

	const qList = `
		SELECT e.id, e.season_id, s.number, e.episode_number, e.title, e.air_date, e.description, e.duration_sec,
			r.avg_rating, r.rating_count
		FROM episodes e
		JOIN seasons s ON s.id = e.season_id
		LEFT JOIN LATERAL (
			SELECT AVG(er.rating)::float8 AS avg_rating, COUNT(*) AS rating_count
			FROM episode_ratings er
			WHERE er.episode_id = e.id
		) r ON true
		WHERE s.show_id = $1 AND s.number = $2
		ORDER BY e.episode_number
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.QueryContext(ctx, qList, showID, seasonNumber, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Episode, 0)
	for rows.Next() {
		var (
			e        model.Episode
			duration int64
			avg      sql.NullFloat64
			count    int
		)
		if err := rows.Scan(&e.ID, &e.SeasonID, &e.SeasonNumber, &e.Number, &e.Title, &e.AirDate,
			&e.Description, &duration, &avg, &count); err != nil {
			return nil, err
		}
		e.Duration = secondsToDuration(duration)
		e.Rating = rating(avg, count)
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Episode]{
		Items: items,
		Total: total,
	}, nil
}

// Search matches title and description and applies rating and year bounds.
func (r *TVShowPostgres) Search(ctx context.Context, f repository.SearchFilter, limit int) ([]model.TVShowSummary, error) {
	c := &conds{}
	c.add("(t.title ILIKE ? OR t.description ILIKE ?)", likePattern(f.Query))
	if f.MinRating != nil {
		c.add("r.avg_rating >= ?", *f.MinRating)
	}
	if f.MaxRating != nil {
		c.add("r.avg_rating <= ?", *f.MaxRating)
	}
	if f.YearFrom != nil {
		c.add("t.start_date >= ?", yearStart(*f.YearFrom))
	}
	if f.YearTo != nil {
		c.add("t.start_date < ?", yearStart(*f.YearTo+1))
	}

	q := fmt.Sprintf(`SELECT %s FROM tv_shows t %s%s ORDER BY t.title, t.id LIMIT %s`,
		showSummaryCols, showRatingLateral, c.where(), c.next(1))
	rows, err := r.db.QueryContext(ctx, q, append(c.args, limit)...)
	if err != nil {
		return nil, err
	}
	return collectShowSummaries(rows)
}

// SetPoster updates the poster reference of a show.
func (r *TVShowPostgres) SetPoster(ctx context.Context, id int64, poster string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE tv_shows SET poster = $2 WHERE id = $1`, id, poster)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// ShowIDForEpisode resolves the show an episode belongs to.
func (r *TVShowPostgres) ShowIDForEpisode(ctx context.Context, episodeID int64) (int64, error) {
	const q = `
		SELECT s.show_id
		FROM episodes e
		JOIN seasons s ON s.id = e.season_id
		WHERE e.id = $1
	`
	var showID int64
	if err := r.db.QueryRowContext(ctx, q, episodeID).Scan(&showID); err != nil {
		return 0, err
	}
	return showID, nil
}
