package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"moviedb/internal/logger"
)

const (
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey holds the id in fiber locals.
	RequestIDLocalKey = "request_id"

	maxRequestIDLen = 128
)

// RequestID reuses an incoming X-Request-ID of at most 128 bytes or generates
// a UUID. The id is echoed on the response, kept in locals and attached to
// the user context so log records written with it carry the id.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)
		c.SetUserContext(logger.WithRequestID(c.UserContext(), id))
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}
