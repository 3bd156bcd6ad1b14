package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"hillcrest-academy/app/config"
	"hillcrest-academy/app/database"
	"hillcrest-academy/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/stats", GetDashboardStatsAPI)
}

// GetDashboardStatsAPI recomputes every aggregate from durable state on each
// request; nothing is cached between requests.
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	stats := database.GetDashboardStats(config.GetDB())
	return c.JSON(fiber.Map{"stats": stats})
}
