package behaviour

import (
	"github.com/gofiber/fiber/v2"

	"hillcrest-academy/app/config"
	"hillcrest-academy/app/database"
	"hillcrest-academy/app/models"
	"hillcrest-academy/app/routes/respond"
	"hillcrest-academy/app/validation"
)

func CreateBehaviourAPI(c *fiber.Ctx) error {
	type BehaviourRequest struct {
		StudentID string `json:"student_id" validate:"required,uuid"`
		Type      string `json:"type" validate:"required,oneof=positive negative"`
		Category  string `json:"category" validate:"required"`
		Points    int    `json:"points"`
		Notes     string `json:"notes,omitempty"`
	}

	var req BehaviourRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return respond.Error(c, err)
	}

	entry := &models.Behaviour{
		StudentID: req.StudentID,
		Type:      models.BehaviourType(req.Type),
		Category:  req.Category,
		Points:    req.Points,
		Notes:     req.Notes,
	}

	result, err := database.CreateBehaviour(config.GetDB(), entry)
	if err != nil {
		return respond.Error(c, err)
	}

	// detention_warning tells the caller the running total reached the
	// threshold; scheduling the detention is a policy decision made there.
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"behaviour":         result.Behaviour,
		"total_points":      result.TotalPoints,
		"detention_warning": result.DetentionWarning,
	})
}

func GetStudentBehaviourAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	student, err := database.GetStudentByID(config.GetDB(), studentID)
	if err != nil {
		return respond.Error(c, err)
	}
	if student == nil {
		return respond.Error(c, models.NewNotFoundError("student", studentID))
	}

	records, err := database.GetBehaviourByStudent(config.GetDB(), studentID)
	if err != nil {
		return respond.Error(c, err)
	}

	return c.JSON(fiber.Map{
		"behaviour":    records,
		"count":        len(records),
		"total_points": student.BehaviourPoints,
		"student_id":   studentID,
	})
}
