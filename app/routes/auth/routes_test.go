package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hillcrest-academy/app/models"
)

func statusForRole(t *testing.T, middleware fiber.Handler, role models.UserRole) int {
	t.Helper()

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", &models.User{Role: role})
		return c.Next()
	})
	app.Get("/", middleware, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestRequireStudentManager(t *testing.T) {
	assert.Equal(t, 200, statusForRole(t, RequireStudentManager, models.RoleAdmin))
	assert.Equal(t, 200, statusForRole(t, RequireStudentManager, models.RoleTeacher))
	assert.Equal(t, 403, statusForRole(t, RequireStudentManager, models.UserRole("office")))
}

func TestRoleMiddleware(t *testing.T) {
	adminOnly := RoleMiddleware(models.RoleAdmin)
	assert.Equal(t, 200, statusForRole(t, adminOnly, models.RoleAdmin))
	assert.Equal(t, 403, statusForRole(t, adminOnly, models.RoleTeacher))
}
