package respond

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hillcrest-academy/app/models"
)

func statusFor(t *testing.T, err error) int {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return Error(c, err)
	})

	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, reqErr)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestErrorMapsTaxonomyToStatusCodes(t *testing.T) {
	assert.Equal(t, 400, statusFor(t, models.NewValidationError("date", "invalid")))
	assert.Equal(t, 404, statusFor(t, models.NewNotFoundError("student", "abc")))
	assert.Equal(t, 409, statusFor(t, models.NewRejectedError("absent today")))
	assert.Equal(t, 500, statusFor(t, errors.New("boom")))
	assert.Equal(t, 500, statusFor(t, &models.ConsistencyError{Op: "counter update", Err: errors.New("tx")}))
}
