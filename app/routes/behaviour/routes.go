package behaviour

import (
	"github.com/gofiber/fiber/v2"

	"hillcrest-academy/app/routes/auth"
)

func SetupBehaviourRoutes(app *fiber.App) {
	api := app.Group("/api/behaviour")
	api.Use(auth.AuthMiddleware)

	api.Post("/", auth.RequireStudentManager, CreateBehaviourAPI)
	api.Get("/student/:studentId", GetStudentBehaviourAPI)
}
