package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	app := fiber.New()
	app.Use(StructuredLogger(logger))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(c))
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})

	t.Run("Assigns a request id", func(t *testing.T) {
		buf.Reset()
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
		require.NoError(t, err)

		id := resp.Header.Get("X-Request-ID")
		_, parseErr := uuid.Parse(id)
		assert.NoError(t, parseErr)
		assert.Contains(t, buf.String(), `"msg":"request completed"`)
		assert.Contains(t, buf.String(), id)
	})

	t.Run("Keeps a valid incoming request id", func(t *testing.T) {
		incoming := uuid.New().String()
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set("X-Request-ID", incoming)

		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, incoming, resp.Header.Get("X-Request-ID"))
	})

	t.Run("Client errors log at warn", func(t *testing.T) {
		buf.Reset()
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
	})
}

func TestSecurity(t *testing.T) {
	app := fiber.New()
	app.Use(Security())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
}
