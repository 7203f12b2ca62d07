package postgres

import (
	"context"
	"database/sql"
	"sort"

	"moviedb/internal/model"
	"moviedb/internal/repository"
)

// ReportPostgres is a PostgreSQL implementation of repository.ReportRepository.
// Each method runs a fixed set of grouped queries for the whole id batch.
type ReportPostgres struct {
	db DBTX
}

// NewReportPostgres creates a new ReportPostgres repository.
func NewReportPostgres(db DBTX) *ReportPostgres {
	return &ReportPostgres{db: db}
}

var _ repository.ReportRepository = (*ReportPostgres)(nil)

// ActorIDs returns actor ids in id order; limit <= 0 means all actors.
func (r *ReportPostgres) ActorIDs(ctx context.Context, limit int) ([]int64, error) {
	var arg any
	if limit > 0 {
		arg = limit
	}
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM actors ORDER BY id LIMIT $1`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
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
	return ids, nil
}

const (
	qActorRows = `
		SELECT id, first_name, last_name, full_name
		FROM actors
		WHERE id = ANY($1::bigint[])
		ORDER BY id
	`
	qActorMovieCareer = `
		SELECT ma.actor_id, COUNT(*), MIN(m.release_date), MAX(m.release_date)
		FROM movie_actors ma
		JOIN movies m ON m.id = ma.movie_id
		WHERE ma.actor_id = ANY($1::bigint[])
		GROUP BY ma.actor_id
	`
	qActorMovieDistribution = `
		SELECT ma.actor_id, mr.rating, COUNT(*)
		FROM movie_actors ma
		JOIN movie_ratings mr ON mr.movie_id = ma.movie_id
		WHERE ma.actor_id = ANY($1::bigint[])
		GROUP BY ma.actor_id, mr.rating
	`
	qActorEpisodeCareer = `
		SELECT ea.actor_id, COUNT(*), MIN(e.air_date), MAX(e.air_date)
		FROM episode_actors ea
		JOIN episodes e ON e.id = ea.episode_id
		WHERE ea.actor_id = ANY($1::bigint[])
		GROUP BY ea.actor_id
	`
	qActorEpisodeDistribution = `
		SELECT ea.actor_id, er.rating, COUNT(*)
		FROM episode_actors ea
		JOIN episode_ratings er ON er.episode_id = ea.episode_id
		WHERE ea.actor_id = ANY($1::bigint[])
		GROUP BY ea.actor_id, er.rating
	`
)

// ActorStats loads counts, rating distributions and career dates for a batch.
func (r *ReportPostgres) ActorStats(ctx context.Context, actorIDs []int64) ([]repository.ActorStats, error) {
	if len(actorIDs) == 0 {
		return []repository.ActorStats{}, nil
	}
	ids := int64Array(actorIDs)

	rows, err := r.db.QueryContext(ctx, qActorRows, ids)
	if err != nil {
		return nil, err
	}
	actors, err := collectPeople(rows, model.KindActor)
	if err != nil {
		return nil, err
	}

	out := make([]repository.ActorStats, len(actors))
	byID := make(map[int64]*repository.ActorStats, len(actors))
	for i, a := range actors {
		out[i].Actor = a
		byID[a.ID] = &out[i]
	}

	err = r.scanCareer(ctx, qActorMovieCareer, ids, func(s *repository.ActorStats, n int, first, last *sql.NullTime) {
		s.MovieCount = n
		s.FirstMovie, s.LastMovie = nullTime(*first), nullTime(*last)
	}, byID)
	if err != nil {
		return nil, err
	}
	err = r.scanCareer(ctx, qActorEpisodeCareer, ids, func(s *repository.ActorStats, n int, first, last *sql.NullTime) {
		s.EpisodeCount = n
		s.FirstEpisode, s.LastEpisode = nullTime(*first), nullTime(*last)
	}, byID)
	if err != nil {
		return nil, err
	}

	err = r.scanDistribution(ctx, qActorMovieDistribution, ids, func(s *repository.ActorStats) *[model.MaxScore]int {
		return &s.MovieDistribution
	}, byID)
	if err != nil {
		return nil, err
	}
	err = r.scanDistribution(ctx, qActorEpisodeDistribution, ids, func(s *repository.ActorStats) *[model.MaxScore]int {
		return &s.EpisodeDistribution
	}, byID)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *ReportPostgres) scanCareer(
	ctx context.Context, q, ids string,
	apply func(s *repository.ActorStats, n int, first, last *sql.NullTime),
	byID map[int64]*repository.ActorStats,
) error {
	rows, err := r.db.QueryContext(ctx, q, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          int64
			n           int
			first, last sql.NullTime
		)
		if err := rows.Scan(&id, &n, &first, &last); err != nil {
			return err
		}
		if s, ok := byID[id]; ok {
			apply(s, n, &first, &last)
		}
	}
	return rows.Err()
}

func (r *ReportPostgres) scanDistribution(
	ctx context.Context, q, ids string,
	field func(s *repository.ActorStats) *[model.MaxScore]int,
	byID map[int64]*repository.ActorStats,
) error {
	rows, err := r.db.QueryContext(ctx, q, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var score, n int
		if err := rows.Scan(&id, &score, &n); err != nil {
			return err
		}
		s, ok := byID[id]
		if !ok || score < model.MinScore || score > model.MaxScore {
			continue
		}
		field(s)[score-1] += n
	}
	return rows.Err()
}

// ActorGenres merges per-genre movie and episode credits; episodes count
// toward their show's genre.
func (r *ReportPostgres) ActorGenres(ctx context.Context, actorIDs []int64) (map[int64][]repository.GenreStat, error) {
	out := make(map[int64][]repository.GenreStat, len(actorIDs))
	if len(actorIDs) == 0 {
		return out, nil
	}
	ids := int64Array(actorIDs)

	const qMovies = `
		SELECT ma.actor_id, m.genre, COUNT(DISTINCT m.id), COALESCE(SUM(mr.rating), 0), COUNT(mr.id)
		FROM movie_actors ma
		JOIN movies m ON m.id = ma.movie_id
		LEFT JOIN movie_ratings mr ON mr.movie_id = m.id
		WHERE ma.actor_id = ANY($1::bigint[])
		GROUP BY ma.actor_id, m.genre
	`
	const qEpisodes = `
		SELECT ea.actor_id, t.genre, COUNT(DISTINCT e.id), COALESCE(SUM(er.rating), 0), COUNT(er.id)
		FROM episode_actors ea
		JOIN episodes e ON e.id = ea.episode_id
		JOIN seasons s ON s.id = e.season_id
		JOIN tv_shows t ON t.id = s.show_id
		LEFT JOIN episode_ratings er ON er.episode_id = e.id
		WHERE ea.actor_id = ANY($1::bigint[])
		GROUP BY ea.actor_id, t.genre
	`

	merged := make(map[int64]map[model.Genre]*repository.GenreStat)
	collect := func(q string, movies bool) error {
		rows, err := r.db.QueryContext(ctx, q, ids)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				id                int64
				genre             string
				titles, sum, nRat int
			)
			if err := rows.Scan(&id, &genre, &titles, &sum, &nRat); err != nil {
				return err
			}
			g, ok := merged[id]
			if !ok {
				g = make(map[model.Genre]*repository.GenreStat)
				merged[id] = g
			}
			st, ok := g[model.Genre(genre)]
			if !ok {
				st = &repository.GenreStat{Genre: model.Genre(genre)}
				g[model.Genre(genre)] = st
			}
			if movies {
				st.Movies += titles
			} else {
				st.Episodes += titles
			}
			st.RatingSum += sum
			st.RatingCount += nRat
		}
		return rows.Err()
	}
	if err := collect(qMovies, true); err != nil {
		return nil, err
	}
	if err := collect(qEpisodes, false); err != nil {
		return nil, err
	}

	for id, g := range merged {
		stats := make([]repository.GenreStat, 0, len(g))
		for _, st := range g {
			stats = append(stats, *st)
		}
		sort.Slice(stats, func(i, j int) bool {
			ti, tj := stats[i].Movies+stats[i].Episodes, stats[j].Movies+stats[j].Episodes
			if ti != tj {
				return ti > tj
			}
			return stats[i].Genre < stats[j].Genre
		})
		out[id] = stats
	}
	return out, nil
}

const qActorCollaborators = `
	WITH pairs AS (
		SELECT ma.actor_id, a.id AS person_id, a.full_name AS name, false AS director
		FROM movie_actors ma
		JOIN movie_actors o ON o.movie_id = ma.movie_id AND o.actor_id <> ma.actor_id
		JOIN actors a ON a.id = o.actor_id
		WHERE ma.actor_id = ANY($1::bigint[])
		UNION ALL
		SELECT ma.actor_id, d.id, d.full_name, true
		FROM movie_actors ma
		JOIN movie_directors md ON md.movie_id = ma.movie_id
		JOIN directors d ON d.id = md.director_id
		WHERE ma.actor_id = ANY($1::bigint[])
		UNION ALL
		SELECT ea.actor_id, a.id, a.full_name, false
		FROM episode_actors ea
		JOIN episode_actors o ON o.episode_id = ea.episode_id AND o.actor_id <> ea.actor_id
		JOIN actors a ON a.id = o.actor_id
		WHERE ea.actor_id = ANY($1::bigint[])
		UNION ALL
		SELECT ea.actor_id, d.id, d.full_name, true
		FROM episode_actors ea
		JOIN episode_directors ed ON ed.episode_id = ea.episode_id
		JOIN directors d ON d.id = ed.director_id
		WHERE ea.actor_id = ANY($1::bigint[])
	), ranked AS (
		SELECT actor_id, name, director, COUNT(*) AS n,
			ROW_NUMBER() OVER (PARTITION BY actor_id ORDER BY COUNT(*) DESC, name, person_id) AS rn
		FROM pairs
		GROUP BY actor_id, director, person_id, name
	)
	SELECT actor_id, name, director, n
	FROM ranked
	WHERE rn <= $2
	ORDER BY actor_id, rn
`

// ActorCollaborators returns each actor's most frequent co-credited people.
func (r *ReportPostgres) ActorCollaborators(ctx context.Context, actorIDs []int64, top int) (map[int64][]repository.Collaborator, error) {
	out := make(map[int64][]repository.Collaborator, len(actorIDs))
	if len(actorIDs) == 0 || top <= 0 {
		return out, nil
	}

	rows, err := r.db.QueryContext(ctx, qActorCollaborators, int64Array(actorIDs), top)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id int64
			c  repository.Collaborator
		)
		if err := rows.Scan(&id, &c.Name, &c.Director, &c.Count); err != nil {
			return nil, err
		}
		out[id] = append(out[id], c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
