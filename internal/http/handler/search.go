package handler

import (
	"github.com/gofiber/fiber/v2"

	"moviedb/internal/service"
)

// Search finds titles and people.
// @Summary Search
// @Tags search
// @Produce json
// @Param q query string false "Query"
// @Param min_rating query number false "Minimum average rating"
// @Param max_rating query number false "Maximum average rating"
// @Param year_from query int false "First release year"
// @Param year_to query int false "Last release year"
// @Param content_type query string false "all, movies, tv_shows, actors or directors"
// @Success 200 {object} service.SearchResult
// @Failure 400 {object} errorPayload
// @Router /search [get]
func Search(svc service.SearchService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Search(c.UserContext(), service.SearchParams{
			Query:       c.Query("q"),
			MinRating:   c.Query("min_rating"),
			MaxRating:   c.Query("max_rating"),
			YearFrom:    c.Query("year_from"),
			YearTo:      c.Query("year_to"),
			ContentType: c.Query("content_type"),
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
