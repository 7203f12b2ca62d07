package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetricsApp(t *testing.T, skip ...string) (*fiber.App, *HTTPMetrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, err := NewHTTPMetrics(reg, skip...)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(m.Handler())
	app.Get("/movies/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Post("/movies/:id/ratings", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "bad rating")
	})
	app.Get("/metrics", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app, m, reg
}

func TestHTTPMetrics(t *testing.T) {
	app, m, _ := newMetricsApp(t)

	for _, id := range []string{"1", "2"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/movies/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
	_, err := app.Test(httptest.NewRequest(http.MethodPost, "/movies/1/ratings", nil))
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/movies/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("POST", "/movies/:id/ratings", "400")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
	assert.Zero(t, testutil.ToFloat64(m.inFlight))
}

func TestHTTPMetrics_Skip(t *testing.T) {
	app, _, reg := newMetricsApp(t, "/metrics")

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)

	n, err := testutil.GatherAndCount(reg, "moviedb_http_requests_total")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestHTTPMetrics_Exposition(t *testing.T) {
	app, _, reg := newMetricsApp(t)

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/movies/7", nil))
	require.NoError(t, err)

	want := `
# HELP moviedb_http_requests_total HTTP requests by method, route and status.
# TYPE moviedb_http_requests_total counter
moviedb_http_requests_total{method="GET",route="/movies/:id",status="200"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "moviedb_http_requests_total"))
}

func TestHTTPMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewHTTPMetrics(reg)
	require.NoError(t, err)
	_, err = NewHTTPMetrics(reg)
	assert.Error(t, err)
}
