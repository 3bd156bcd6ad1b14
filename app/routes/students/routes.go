package students

import (
	"github.com/gofiber/fiber/v2"

	"hillcrest-academy/app/models"
	"hillcrest-academy/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", SearchStudentsAPI)
	api.Get("/:id", GetStudentAPI)
	api.Post("/", auth.RequireStudentManager, CreateStudentAPI)
	api.Delete("/:id", auth.RoleMiddleware(models.RoleAdmin), DeleteStudentAPI)
}
