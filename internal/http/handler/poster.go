package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"moviedb/internal/service"
)

type uploadFunc func(ctx context.Context, id int64, up service.PosterUpload) (*service.PosterResult, error)

// uploadPoster reads the multipart "file" field and passes it to upload.
func uploadPoster(upload uploadFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		res, err := upload(c.UserContext(), id, service.PosterUpload{
			Reader:      f,
			Filename:    fh.Filename,
			ContentType: ct,
			Size:        fh.Size,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// UploadMoviePoster replaces a movie's poster image.
// @Summary Upload movie poster
// @Tags posters
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Movie ID"
// @Param file formData file true "Poster image"
// @Success 200 {object} service.PosterResult
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /movies/{id}/poster [put]
func UploadMoviePoster(svc service.PosterService) fiber.Handler {
	return uploadPoster(svc.UploadMoviePoster)
}

// UploadTVShowPoster replaces a show's poster image.
// @Summary Upload TV show poster
// @Tags posters
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Show ID"
// @Param file formData file true "Poster image"
// @Success 200 {object} service.PosterResult
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /tv-shows/{id}/poster [put]
func UploadTVShowPoster(svc service.PosterService) fiber.Handler {
	return uploadPoster(svc.UploadTVShowPoster)
}
