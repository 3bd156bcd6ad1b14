package attendance

import (
	"github.com/gofiber/fiber/v2"

	"hillcrest-academy/app/routes/auth"
)

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)

	api.Post("/", auth.RequireStudentManager, RecordAttendanceAPI)
	api.Get("/student/:studentId", GetStudentAttendanceAPI)
}
