package tutorgroups

import (
	"github.com/gofiber/fiber/v2"

	"hillcrest-academy/app/config"
	"hillcrest-academy/app/database"
	"hillcrest-academy/app/models"
	"hillcrest-academy/app/routes/respond"
	"hillcrest-academy/app/validation"
)

func CreateTutorGroupAPI(c *fiber.Ctx) error {
	type TutorGroupRequest struct {
		Name      string `json:"name" validate:"required"`
		YearGroup int    `json:"year_group" validate:"min=0"`
	}

	var req TutorGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return respond.Error(c, err)
	}

	group := &models.TutorGroup{
		Name:      req.Name,
		YearGroup: req.YearGroup,
	}

	if err := database.CreateTutorGroup(config.GetDB(), group); err != nil {
		return respond.Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"tutor_group": group})
}

func GetTutorGroupAPI(c *fiber.Ctx) error {
	name := c.Params("name")

	group, err := database.GetTutorGroupByName(config.GetDB(), name)
	if err != nil {
		return respond.Error(c, err)
	}
	if group == nil {
		return respond.Error(c, models.NewNotFoundError("tutor group", name))
	}

	return c.JSON(fiber.Map{"tutor_group": group})
}

func GetAllTutorGroupsAPI(c *fiber.Ctx) error {
	groups, err := database.GetAllTutorGroups(config.GetDB())
	if err != nil {
		return respond.Error(c, err)
	}

	return c.JSON(fiber.Map{
		"tutor_groups": groups,
		"count":        len(groups),
	})
}

// GetTutorGroupAttendanceAPI returns the rounded attendance percentage per
// tutor group, grouped over the students' informal tutor_group strings.
func GetTutorGroupAttendanceAPI(c *fiber.Ctx) error {
	groups, err := database.GetTutorGroupAttendance(config.GetDB())
	if err != nil {
		return respond.Error(c, err)
	}

	return c.JSON(fiber.Map{
		"tutor_groups": groups,
		"count":        len(groups),
	})
}
