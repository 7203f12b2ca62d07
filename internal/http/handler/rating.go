package handler

import (
	"github.com/gofiber/fiber/v2"

	"moviedb/internal/service"
)

type rateRequest struct {
	Rating int `json:"rating"`
}

func bindRating(c *fiber.Ctx) (int, bool) {
	var req rateRequest
	if err := c.BodyParser(&req); err != nil {
		return 0, false
	}
	return req.Rating, true
}

// RateMovie records a 1..5 score for a movie.
// @Summary Rate movie
// @Tags ratings
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param body body rateRequest true "Score"
// @Success 201 {object} model.MovieRating
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /movies/{id}/ratings [post]
func RateMovie(svc service.RatingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		score, ok := bindRating(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "body must be {\"rating\": 1..5}")
		}
		r, err := svc.RateMovie(c.UserContext(), id, score)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(r)
	}
}

// RateEpisode records a 1..5 score for an episode.
// @Summary Rate episode
// @Tags ratings
// @Accept json
// @Produce json
// @Param id path int true "Episode ID"
// @Param body body rateRequest true "Score"
// @Success 201 {object} model.EpisodeRating
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /episodes/{id}/ratings [post]
func RateEpisode(svc service.RatingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		score, ok := bindRating(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "body must be {\"rating\": 1..5}")
		}
		r, err := svc.RateEpisode(c.UserContext(), id, score)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(r)
	}
}
