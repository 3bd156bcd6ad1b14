package students

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"hillcrest-academy/app/config"
	"hillcrest-academy/app/database"
	"hillcrest-academy/app/models"
	"hillcrest-academy/app/routes/respond"
	"hillcrest-academy/app/validation"
)

func CreateStudentAPI(c *fiber.Ctx) error {
	type StudentRequest struct {
		FirstName     string `json:"first_name" validate:"required"`
		LastName      string `json:"last_name" validate:"required"`
		DateOfBirth   string `json:"date_of_birth,omitempty"`
		YearGroup     int    `json:"year_group" validate:"min=0"`
		TutorGroup    string `json:"tutor_group"`
		AdmissionDate string `json:"admission_date,omitempty"`
	}

	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return respond.Error(c, err)
	}

	student := &models.Student{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		YearGroup:  req.YearGroup,
		TutorGroup: req.TutorGroup,
	}

	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return respond.Error(c, models.NewValidationError("date_of_birth", "invalid date format, use YYYY-MM-DD"))
		}
		student.DateOfBirth = &dob
	}
	if req.AdmissionDate != "" {
		adm, err := time.Parse("2006-01-02", req.AdmissionDate)
		if err != nil {
			return respond.Error(c, models.NewValidationError("admission_date", "invalid date format, use YYYY-MM-DD"))
		}
		student.AdmissionDate = &adm
	}

	if err := database.CreateStudent(config.GetDB(), student); err != nil {
		return respond.Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"student": student})
}

func GetStudentAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	student, err := database.GetStudentByID(config.GetDB(), studentID)
	if err != nil {
		return respond.Error(c, err)
	}
	if student == nil {
		return respond.Error(c, models.NewNotFoundError("student", studentID))
	}

	return c.JSON(fiber.Map{"student": student})
}

// SearchStudentsAPI filters the roster by optional query (name substring),
// year_group and tutor_group, combined with AND.
func SearchStudentsAPI(c *fiber.Ctx) error {
	filters := database.StudentFilters{
		Search:     c.Query("query"),
		TutorGroup: c.Query("tutor_group"),
	}

	if yearGroup := c.Query("year_group"); yearGroup != "" {
		n := c.QueryInt("year_group", -1)
		if n < 0 {
			return respond.Error(c, models.NewValidationError("year_group", "must be a non-negative integer"))
		}
		filters.YearGroup = &n
	}

	students, err := database.GetStudentsWithFilters(config.GetDB(), filters)
	if err != nil {
		return respond.Error(c, err)
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	if err := database.DeleteStudent(config.GetDB(), studentID); err != nil {
		return respond.Error(c, err)
	}

	return c.JSON(fiber.Map{"message": "Student and owned records deleted"})
}
