package tutorgroups

import (
	"github.com/gofiber/fiber/v2"

	"hillcrest-academy/app/models"
	"hillcrest-academy/app/routes/auth"
)

func SetupTutorGroupsRoutes(app *fiber.App) {
	api := app.Group("/api/tutor-groups")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetAllTutorGroupsAPI)
	api.Get("/attendance", GetTutorGroupAttendanceAPI)
	api.Get("/:name", GetTutorGroupAPI)
	api.Post("/", auth.RoleMiddleware(models.RoleAdmin), CreateTutorGroupAPI)
}
