package postgres

import (
	"context"
	"fmt"

	"moviedb/internal/model"
	"moviedb/internal/repository"
)

// personTables names the tables backing one kind of person.
type personTables struct {
	people         string
	movieLinks     string
	episodeLinks   string
	personIDColumn string
}

func tablesFor(kind model.PersonKind) personTables {
	if kind == model.KindDirector {
		return personTables{people: "directors", movieLinks: "movie_directors", episodeLinks: "episode_directors", personIDColumn: "director_id"}
	}
	return personTables{people: "actors", movieLinks: "movie_actors", episodeLinks: "episode_actors", personIDColumn: "actor_id"}
}

// PersonPostgres is a PostgreSQL implementation of repository.PersonRepository
// for either actors or directors.
type PersonPostgres struct {
	db   DBTX
	kind model.PersonKind
	t    personTables
}

// NewPersonPostgres creates a repository for the given kind of person.
func NewPersonPostgres(db DBTX, kind model.PersonKind) *PersonPostgres {
	return &PersonPostgres{db: db, kind: kind, t: tablesFor(kind)}
}

var _ repository.PersonRepository = (*PersonPostgres)(nil)

// List returns people ordered by first name with their credit counts.
func (r *PersonPostgres) List(ctx context.Context, search string, pq repository.PageQuery) (*repository.PageResult[model.PersonSummary], error) {
	c := &conds{}
	if search != "" {
		c.add("(p.first_name ILIKE ? OR p.last_name ILIKE ?)", likePattern(search))
	}

	var total int
	qCount := fmt.Sprintf(`SELECT COUNT(*) FROM %s p%s`, r.t.people, c.where())
	if err := r.db.QueryRowContext(ctx, qCount, c.args...).Scan(&total); err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
		SELECT p.id, p.first_name, p.last_name, p.full_name,
			(SELECT COUNT(*) FROM %[2]s l WHERE l.%[4]s = p.id) AS movie_count,
			(SELECT COUNT(*) FROM %[3]s l WHERE l.%[4]s = p.id) AS tv_episode_count
		FROM %[1]s p%[5]s
		ORDER BY p.first_name, p.last_name, p.id
		LIMIT %[6]s OFFSET %[7]s`,
		r.t.people, r.t.movieLinks, r.t.episodeLinks, r.t.personIDColumn, c.where(), c.next(1), c.next(2))
	rows, err := r.db.QueryContext(ctx, q, append(c.args, pq.Limit, pq.Offset)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.PersonSummary, 0)
	for rows.Next() {
		s := model.PersonSummary{Person: model.Person{Kind: r.kind}}
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.FullName, &s.MovieCount, &s.EpisodeCount); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.PersonSummary]{
		Items: items,
		Total: total,
	}, nil
}

// FindByID returns the person with movie and distinct TV show totals.
func (r *PersonPostgres) FindByID(ctx context.Context, id int64) (*model.PersonDetail, error) {
	q := fmt.Sprintf(`
		SELECT p.id, p.first_name, p.last_name, p.full_name,
			(SELECT COUNT(*) FROM %[2]s l WHERE l.%[4]s = p.id) AS total_movies,
			(SELECT COUNT(DISTINCT s.show_id)
				FROM %[3]s l
				JOIN episodes e ON e.id = l.episode_id
				JOIN seasons s ON s.id = e.season_id
				WHERE l.%[4]s = p.id) AS total_tv_shows
		FROM %[1]s p
		WHERE p.id = $1`,
		r.t.people, r.t.movieLinks, r.t.episodeLinks, r.t.personIDColumn)

	d := model.PersonDetail{Person: model.Person{Kind: r.kind}}
	err := r.db.QueryRowContext(ctx, q, id).Scan(&d.ID, &d.FirstName, &d.LastName, &d.FullName, &d.TotalMovies, &d.TotalTVShows)
	if err != nil {
		return nil, err
	}
	d.Movies = []model.MovieSummary{}
	d.TVShows = []model.TVShowSummary{}
	return &d, nil
}

// Movies returns the movies a person is credited on, newest first.
func (r *PersonPostgres) Movies(ctx context.Context, personID int64) ([]model.MovieSummary, error) {
	q := fmt.Sprintf(`SELECT %s FROM movies m %s
		WHERE EXISTS (SELECT 1 FROM %s l WHERE l.movie_id = m.id AND l.%s = $1)
		ORDER BY m.release_date DESC, m.id`,
		movieSummaryCols, movieRatingLateral, r.t.movieLinks, r.t.personIDColumn)
	rows, err := r.db.QueryContext(ctx, q, personID)
	if err != nil {
		return nil, err
	}
	return collectMovieSummaries(rows)
}

// TVShows returns the distinct shows a person has episode credits on.
func (r *PersonPostgres) TVShows(ctx context.Context, personID int64) ([]model.TVShowSummary, error) {
	q := fmt.Sprintf(`SELECT %s FROM tv_shows t %s
		WHERE EXISTS (
			SELECT 1 FROM %s l
			JOIN episodes e ON e.id = l.episode_id
			JOIN seasons s ON s.id = e.season_id
			WHERE s.show_id = t.id AND l.%s = $1)
		ORDER BY t.start_date DESC, t.id`,
		showSummaryCols, showRatingLateral, r.t.episodeLinks, r.t.personIDColumn)
	rows, err := r.db.QueryContext(ctx, q, personID)
	if err != nil {
		return nil, err
	}
	return collectShowSummaries(rows)
}

// Search matches first, last or full name.
func (r *PersonPostgres) Search(ctx context.Context, query string, limit int) ([]model.Person, error) {
	q := fmt.Sprintf(`SELECT id, first_name, last_name, full_name FROM %s
		WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR full_name ILIKE $1
		ORDER BY first_name, last_name, id
		LIMIT $2`, r.t.people)
	rows, err := r.db.QueryContext(ctx, q, likePattern(query), limit)
	if err != nil {
		return nil, err
	}
	return collectPeople(rows, r.kind)
}
