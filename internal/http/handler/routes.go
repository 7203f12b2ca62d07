package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"moviedb/internal/model"
	"moviedb/internal/service"
)

// Deps are the collaborators the routes need. Metrics may be nil, in which
// case /metrics is not served.
type Deps struct {
	DB      *sql.DB
	Catalog service.CatalogService
	Search  service.SearchService
	Rating  service.RatingService
	Poster  service.PosterService
	Metrics prometheus.Gatherer
}

// Metrics serves the Prometheus exposition format for g.
func Metrics(g prometheus.Gatherer) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())
	if d.Metrics != nil {
		app.Get("/metrics", Metrics(d.Metrics))
	}

	app.Get("/", Home(d.Catalog))

	app.Get("/movies", ListMovies(d.Catalog))
	app.Get("/movies/:id", GetMovie(d.Catalog))
	app.Post("/movies/:id/ratings", RateMovie(d.Rating))
	app.Put("/movies/:id/poster", UploadMoviePoster(d.Poster))

	app.Get("/tv-shows", ListTVShows(d.Catalog))
	app.Get("/tv-shows/:id", GetTVShow(d.Catalog))
	app.Get("/tv-shows/:id/seasons/:number/episodes", ListEpisodes(d.Catalog))
	app.Put("/tv-shows/:id/poster", UploadTVShowPoster(d.Poster))

	app.Post("/episodes/:id/ratings", RateEpisode(d.Rating))

	app.Get("/actors", ListPeople(d.Catalog, model.KindActor))
	app.Get("/actors/:id", GetPerson(d.Catalog, model.KindActor))
	app.Get("/directors", ListPeople(d.Catalog, model.KindDirector))
	app.Get("/directors/:id", GetPerson(d.Catalog, model.KindDirector))

	app.Get("/search", Search(d.Search))
}
