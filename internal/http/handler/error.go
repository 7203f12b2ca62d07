package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"moviedb/internal/http/middleware"
	"moviedb/internal/service"
)

// errorPayload is the body of every error response.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiError struct {
	status  int
	code    string
	message string // empty means err.Error()
}

// serviceErrors is checked in order with errors.Is.
var serviceErrors = []struct {
	err error
	apiError
}{
	{service.ErrIDRequired, apiError{fiber.StatusBadRequest, "INVALID_ID", "id must be a positive integer"}},
	{service.ErrInvalidFilter, apiError{fiber.StatusBadRequest, "INVALID_FILTER", ""}},
	{service.ErrInvalidScore, apiError{fiber.StatusBadRequest, "INVALID_RATING", ""}},
	{service.ErrReaderNil, apiError{fiber.StatusBadRequest, "FILE_REQUIRED", "file is required"}},
	{service.ErrNotFound, apiError{fiber.StatusNotFound, "NOT_FOUND", "resource not found"}},
	{service.ErrStorageDisabled, apiError{fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "poster storage is not configured"}},
}

// statusErrors covers fiber errors raised outside handlers.
var statusErrors = map[int]apiError{
	fiber.StatusBadRequest:            {fiber.StatusBadRequest, "BAD_REQUEST", "bad request"},
	fiber.StatusNotFound:              {fiber.StatusNotFound, "NOT_FOUND", "resource not found"},
	fiber.StatusMethodNotAllowed:      {fiber.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed"},
	fiber.StatusRequestEntityTooLarge: {fiber.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "request body too large"},
}

var internalError = apiError{fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"}

func requestIDFromCtx(c *fiber.Ctx) string {
	id, _ := c.Locals(middleware.RequestIDLocalKey).(string)
	return id
}

// writeError writes the error envelope. message must be safe to show clients.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Error:     errorEnvelope{Code: code, Message: message},
	})
}

func (e apiError) write(c *fiber.Ctx, err error) error {
	msg := e.message
	if msg == "" {
		msg = err.Error()
	}
	return writeError(c, e.status, e.code, msg)
}

// writeServiceError maps service sentinel errors onto the error envelope.
// Anything else becomes a 500 whose cause only reaches the access log.
func writeServiceError(c *fiber.Ctx, err error) error {
	for _, se := range serviceErrors {
		if errors.Is(err, se.err) {
			return se.apiError.write(c, err)
		}
	}
	c.Locals(middleware.ErrorLocalKey, err.Error())
	return internalError.write(c, err)
}

// ErrorHandler is the fiber error handler rendering the error envelope.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			if e, ok := statusErrors[fe.Code]; ok {
				return e.write(c, err)
			}
			return writeError(c, fe.Code, internalError.code, internalError.message)
		}
		return internalError.write(c, err)
	}
}
