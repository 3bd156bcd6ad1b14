package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"hillcrest-academy/app/config"
	"hillcrest-academy/app/database"
	"hillcrest-academy/app/routes/attendance"
	"hillcrest-academy/app/routes/auth"
	"hillcrest-academy/app/routes/behaviour"
	"hillcrest-academy/app/routes/dashboard"
	"hillcrest-academy/app/routes/detentions"
	"hillcrest-academy/app/routes/students"
	"hillcrest-academy/app/routes/timetable"
	"hillcrest-academy/app/routes/tutorgroups"
	"hillcrest-academy/app/services"
)

// customErrorHandler keeps unhandled errors in the same JSON shape as the
// route packages.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

func main() {
	// "Today" and "this week" in the rollups follow the school's local time.
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		log.Printf("Warning: Failed to load Europe/London location, falling back to UTC: %v", err)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Hillcrest Academy",
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	auth.SetupAuthRoutes(app)
	students.SetupStudentsRoutes(app)
	attendance.SetupAttendanceRoutes(app)
	behaviour.SetupBehaviourRoutes(app)
	detentions.SetupDetentionsRoutes(app)
	tutorgroups.SetupTutorGroupsRoutes(app)
	timetable.SetupTimetableRoutes(app)
	dashboard.SetupDashboardRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}
