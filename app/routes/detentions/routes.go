package detentions

import (
	"github.com/gofiber/fiber/v2"

	"hillcrest-academy/app/routes/auth"
)

func SetupDetentionsRoutes(app *fiber.App) {
	api := app.Group("/api/detentions")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetAllDetentionsAPI)
	api.Get("/student/:studentId", GetStudentDetentionsAPI)
	api.Post("/", auth.RequireStudentManager, CreateDetentionAPI)
	api.Patch("/:id", auth.RequireStudentManager, UpdateDetentionAPI)
}
