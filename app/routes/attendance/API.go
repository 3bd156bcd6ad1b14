package attendance

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"hillcrest-academy/app/config"
	"hillcrest-academy/app/database"
	"hillcrest-academy/app/models"
	"hillcrest-academy/app/routes/respond"
	"hillcrest-academy/app/validation"
)

func RecordAttendanceAPI(c *fiber.Ctx) error {
	type AttendanceRequest struct {
		StudentID string `json:"student_id" validate:"required,uuid"`
		Date      string `json:"date" validate:"required"`
		Session   string `json:"session" validate:"required,oneof=am pm"`
		Status    string `json:"status" validate:"required"`
	}

	var req AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return respond.Error(c, err)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return respond.Error(c, models.NewValidationError("date", "invalid date format, use YYYY-MM-DD"))
	}

	status, ok := models.ParseAttendanceStatus(req.Status)
	if !ok {
		return respond.Error(c, models.NewValidationError("status",
			"must be present, late, absent, auth_absent or unauth_absent"))
	}

	mark := &models.Attendance{
		StudentID: req.StudentID,
		Date:      date,
		Session:   models.AttendanceSession(req.Session),
		Status:    status,
	}

	if err := database.RecordAttendance(config.GetDB(), mark); err != nil {
		return respond.Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"attendance": mark})
}

func GetStudentAttendanceAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	student, err := database.GetStudentByID(config.GetDB(), studentID)
	if err != nil {
		return respond.Error(c, err)
	}
	if student == nil {
		return respond.Error(c, models.NewNotFoundError("student", studentID))
	}

	records, err := database.GetAttendanceByStudent(config.GetDB(), studentID)
	if err != nil {
		return respond.Error(c, err)
	}

	return c.JSON(fiber.Map{
		"attendance": records,
		"count":      len(records),
		"student_id": studentID,
	})
}
