package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ErrorLocalKey holds an internal error message handlers want in the access log.
const ErrorLocalKey = "error"

// Logger writes one http_request record per request with method, path,
// route pattern, status and latency in milliseconds. 5xx responses log at
// error level. request_id comes from the user context set by RequestID.
func Logger(log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := statusOf(c, err)
		level := slog.LevelInfo
		if status >= fiber.StatusInternalServerError {
			level = slog.LevelError
		}

		attrs := []slog.Attr{
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("route", c.Route().Path),
			slog.Int("status", status),
			slog.Float64("latency", float64(time.Since(start).Microseconds())/1000),
		}
		if msg, ok := c.Locals(ErrorLocalKey).(string); ok && msg != "" {
			attrs = append(attrs, slog.String("error", msg))
		}
		log.LogAttrs(c.UserContext(), level, "http_request", attrs...)
		return err
	}
}
