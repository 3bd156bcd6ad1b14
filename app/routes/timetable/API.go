package timetable

import (
	"github.com/gofiber/fiber/v2"

	"hillcrest-academy/app/config"
	"hillcrest-academy/app/database"
	"hillcrest-academy/app/models"
	"hillcrest-academy/app/routes/respond"
	"hillcrest-academy/app/validation"
)

type timetableRequest struct {
	TutorGroup string  `json:"tutor_group" validate:"required"`
	DayOfWeek  int     `json:"day_of_week" validate:"min=0,max=6"`
	Period     int     `json:"period" validate:"min=1"`
	Subject    string  `json:"subject" validate:"required"`
	Room       string  `json:"room"`
	TeacherID  *string `json:"teacher_id,omitempty" validate:"omitempty,uuid"`
}

func CreateTimetableEntryAPI(c *fiber.Ctx) error {
	var req timetableRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return respond.Error(c, err)
	}

	entry := &models.TimetableEntry{
		TutorGroup: req.TutorGroup,
		DayOfWeek:  req.DayOfWeek,
		Period:     req.Period,
		Subject:    req.Subject,
		Room:       req.Room,
		TeacherID:  req.TeacherID,
	}

	if err := database.CreateTimetableEntry(config.GetDB(), entry); err != nil {
		return respond.Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"timetable_entry": entry})
}

func UpdateTimetableEntryAPI(c *fiber.Ctx) error {
	entryID := c.Params("id")

	var req timetableRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return respond.Error(c, err)
	}

	entry := &models.TimetableEntry{
		ID:         entryID,
		TutorGroup: req.TutorGroup,
		DayOfWeek:  req.DayOfWeek,
		Period:     req.Period,
		Subject:    req.Subject,
		Room:       req.Room,
		TeacherID:  req.TeacherID,
	}

	if err := database.UpdateTimetableEntry(config.GetDB(), entry); err != nil {
		return respond.Error(c, err)
	}

	return c.JSON(fiber.Map{"timetable_entry": entry})
}

func DeleteTimetableEntryAPI(c *fiber.Ctx) error {
	entryID := c.Params("id")

	if err := database.DeleteTimetableEntry(config.GetDB(), entryID); err != nil {
		return respond.Error(c, err)
	}

	return c.JSON(fiber.Map{"message": "Timetable entry deleted"})
}

func GetTimetableEntryAPI(c *fiber.Ctx) error {
	entryID := c.Params("id")

	entry, err := database.GetTimetableEntryByID(config.GetDB(), entryID)
	if err != nil {
		return respond.Error(c, err)
	}
	if entry == nil {
		return respond.Error(c, models.NewNotFoundError("timetable entry", entryID))
	}

	return c.JSON(fiber.Map{"timetable_entry": entry})
}

func GetAllTimetableEntriesAPI(c *fiber.Ctx) error {
	entries, err := database.GetAllTimetableEntries(config.GetDB())
	if err != nil {
		return respond.Error(c, err)
	}

	return c.JSON(fiber.Map{
		"timetable_entries": entries,
		"count":             len(entries),
	})
}

func GetTimetableByTutorGroupAPI(c *fiber.Ctx) error {
	tutorGroup := c.Params("name")

	entries, err := database.GetTimetableEntriesByTutorGroup(config.GetDB(), tutorGroup)
	if err != nil {
		return respond.Error(c, err)
	}

	return c.JSON(fiber.Map{
		"timetable_entries": entries,
		"count":             len(entries),
		"tutor_group":       tutorGroup,
	})
}
