package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plume/internal/models"
)

func TestErrorHandlerRendersStructuredInternalError(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: errorHandler})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("connection reset by peer")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body models.ErrorResponse
	decodeJSON(t, resp, &body)
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.Equal(t, "Internal server error", body.Error)
}
