package timetable

import (
	"github.com/gofiber/fiber/v2"

	"hillcrest-academy/app/models"
	"hillcrest-academy/app/routes/auth"
)

func SetupTimetableRoutes(app *fiber.App) {
	api := app.Group("/api/timetable")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetAllTimetableEntriesAPI)
	api.Get("/tutor-group/:name", GetTimetableByTutorGroupAPI)
	api.Get("/:id", GetTimetableEntryAPI)
	api.Post("/", auth.RoleMiddleware(models.RoleAdmin), CreateTimetableEntryAPI)
	api.Put("/:id", auth.RoleMiddleware(models.RoleAdmin), UpdateTimetableEntryAPI)
	api.Delete("/:id", auth.RoleMiddleware(models.RoleAdmin), DeleteTimetableEntryAPI)
}
