package detentions

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"hillcrest-academy/app/config"
	"hillcrest-academy/app/database"
	"hillcrest-academy/app/models"
	"hillcrest-academy/app/routes/respond"
	"hillcrest-academy/app/validation"
)

func CreateDetentionAPI(c *fiber.Ctx) error {
	type DetentionRequest struct {
		StudentID string `json:"student_id" validate:"required,uuid"`
		Type      string `json:"type" validate:"required,oneof=lunch after_school"`
		Date      string `json:"date" validate:"required"`
		Time      string `json:"time"`
		Location  string `json:"location"`
		Reason    string `json:"reason,omitempty"`
	}

	var req DetentionRequest
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

	student, err := database.GetStudentByID(config.GetDB(), req.StudentID)
	if err != nil {
		return respond.Error(c, err)
	}
	if student == nil {
		return respond.Error(c, models.NewNotFoundError("student", req.StudentID))
	}

	detention := &models.Detention{
		StudentID: req.StudentID,
		Type:      models.DetentionType(req.Type),
		Date:      date,
		Time:      req.Time,
		Location:  req.Location,
		Reason:    req.Reason,
	}

	if err := database.CreateDetention(config.GetDB(), detention); err != nil {
		return respond.Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"detention": detention})
}

func UpdateDetentionAPI(c *fiber.Ctx) error {
	detentionID := c.Params("id")

	type DetentionPatchRequest struct {
		Type     *string `json:"type,omitempty" validate:"omitempty,oneof=lunch after_school"`
		Date     *string `json:"date,omitempty"`
		Time     *string `json:"time,omitempty"`
		Location *string `json:"location,omitempty"`
		Status   *string `json:"status,omitempty" validate:"omitempty,oneof=scheduled attended missed"`
		Reason   *string `json:"reason,omitempty"`
	}

	var req DetentionPatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return respond.Error(c, err)
	}

	patch := models.DetentionPatch{
		Time:     req.Time,
		Location: req.Location,
		Reason:   req.Reason,
	}
	if req.Type != nil {
		t := models.DetentionType(*req.Type)
		patch.Type = &t
	}
	if req.Status != nil {
		s := models.DetentionStatus(*req.Status)
		patch.Status = &s
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return respond.Error(c, models.NewValidationError("date", "invalid date format, use YYYY-MM-DD"))
		}
		patch.Date = &date
	}

	detention, err := database.UpdateDetention(config.GetDB(), detentionID, patch)
	if err != nil {
		return respond.Error(c, err)
	}

	return c.JSON(fiber.Map{"detention": detention})
}

func GetAllDetentionsAPI(c *fiber.Ctx) error {
	detentions, err := database.GetAllDetentions(config.GetDB())
	if err != nil {
		return respond.Error(c, err)
	}

	return c.JSON(fiber.Map{
		"detentions": detentions,
		"count":      len(detentions),
	})
}

func GetStudentDetentionsAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	detentions, err := database.GetDetentionsByStudent(config.GetDB(), studentID)
	if err != nil {
		return respond.Error(c, err)
	}

	return c.JSON(fiber.Map{
		"detentions": detentions,
		"count":      len(detentions),
		"student_id": studentID,
	})
}
