package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"moviedb/internal/model"
	"moviedb/internal/service"
)

func listParams(c *fiber.Ctx) service.ListParams {
	return service.ListParams{
		Page:   queryPage(c),
		Genre:  c.Query("genre"),
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
	}
}

// Home returns featured and latest titles.
// @Summary Home page
// @Tags catalog
// @Produce json
// @Success 200 {object} service.HomePage
// @Failure 500 {object} errorPayload
// @Router / [get]
func Home(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		home, err := svc.Home(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(home)
	}
}

// ListMovies returns one page of movies.
// @Summary List movies
// @Tags movies
// @Produce json
// @Param page query int false "Page number"
// @Param genre query string false "Genre filter"
// @Param search query string false "Title, description or credited name"
// @Param sort query string false "title, release_date or rating"
// @Success 200 {object} service.Page[model.MovieSummary]
// @Failure 400 {object} errorPayload
// @Router /movies [get]
func ListMovies(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := svc.ListMovies(c.UserContext(), listParams(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(page)
	}
}

// GetMovie returns a movie with credits, rating and similar titles.
// @Summary Get movie
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} model.MovieDetail
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /movies/{id} [get]
func GetMovie(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		m, err := svc.GetMovie(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(m)
	}
}

// ListTVShows returns one page of TV shows.
// @Summary List TV shows
// @Tags tv-shows
// @Produce json
// @Param page query int false "Page number"
// @Param genre query string false "Genre filter"
// @Param search query string false "Title or description"
// @Param sort query string false "title or start_date"
// @Success 200 {object} service.Page[model.TVShowSummary]
// @Failure 400 {object} errorPayload
// @Router /tv-shows [get]
func ListTVShows(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := svc.ListTVShows(c.UserContext(), listParams(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(page)
	}
}

// GetTVShow returns a show with seasons, rating and similar titles.
// @Summary Get TV show
// @Tags tv-shows
// @Produce json
// @Param id path int true "Show ID"
// @Success 200 {object} model.TVShowDetail
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /tv-shows/{id} [get]
func GetTVShow(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		s, err := svc.GetTVShow(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(s)
	}
}

// ListEpisodes returns one page of a season's episodes.
// @Summary List season episodes
// @Tags tv-shows
// @Produce json
// @Param id path int true "Show ID"
// @Param number path int true "Season number"
// @Param page query int false "Page number"
// @Success 200 {object} service.EpisodeList
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /tv-shows/{id}/seasons/{number}/episodes [get]
func ListEpisodes(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		number, err := strconv.Atoi(c.Params("number"))
		if err != nil || number < 1 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "season number must be a positive integer")
		}
		list, err := svc.ListEpisodes(c.UserContext(), id, number, queryPage(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(list)
	}
}

// ListPeople returns one page of actors or directors.
// @Summary List actors or directors
// @Tags people
// @Produce json
// @Param page query int false "Page number"
// @Param search query string false "Name"
// @Success 200 {object} service.Page[model.PersonSummary]
// @Router /actors [get]
// @Router /directors [get]
func ListPeople(svc service.CatalogService, kind model.PersonKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := svc.ListPeople(c.UserContext(), kind, c.Query("search"), queryPage(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(page)
	}
}

// GetPerson returns an actor or director with their titles.
// @Summary Get actor or director
// @Tags people
// @Produce json
// @Param id path int true "Person ID"
// @Success 200 {object} model.PersonDetail
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /actors/{id} [get]
// @Router /directors/{id} [get]
func GetPerson(svc service.CatalogService, kind model.PersonKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		p, err := svc.GetPerson(c.UserContext(), kind, id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(p)
	}
}
