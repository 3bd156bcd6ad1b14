package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hillcrest-academy/app/config"
	"hillcrest-academy/app/database"
	"hillcrest-academy/app/models"
	"hillcrest-academy/app/routes/respond"
	"hillcrest-academy/app/validation"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return respond.Error(c, err)
	}

	user, err := database.GetUserByEmail(config.GetDB(), req.Email)
	if err != nil {
		return respond.Error(c, err)
	}
	if user == nil || !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	sessionID := uuid.New().String()
	expiresAt := time.Now().Add(24 * time.Hour)
	if err := database.CreateSession(config.GetDB(), sessionID, user.ID, expiresAt); err != nil {
		return respond.Error(c, err)
	}

	token, err := GenerateJWT(user, sessionID)
	if err != nil {
		return respond.Error(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	// Removing the session row revokes every token bound to it.
	if sessionID, ok := c.Locals("session_id").(string); ok && sessionID != "" {
		if err := database.DeleteSession(config.GetDB(), sessionID); err != nil {
			return respond.Error(c, err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

func ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=8"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return respond.Error(c, err)
	}

	userID := c.Locals("user_id").(string)
	user, err := database.GetUserByID(config.GetDB(), userID)
	if err != nil {
		return respond.Error(c, err)
	}
	if user == nil {
		return respond.Error(c, models.NewNotFoundError("user", userID))
	}

	if !CheckPasswordHash(req.CurrentPassword, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Current password is incorrect"})
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		return respond.Error(c, err)
	}
	if err := database.UpdateUserPassword(config.GetDB(), user.ID, hashed); err != nil {
		return respond.Error(c, err)
	}

	return c.JSON(fiber.Map{"message": "Password changed successfully"})
}

func CurrentUserAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.JSON(fiber.Map{"user": user})
}

// DeleteUserAPI deactivates a staff account. Sessions already issued keep
// working until they expire; deactivation only blocks new logins.
func DeleteUserAPI(c *fiber.Ctx) error {
	userID := c.Params("id")

	user, err := database.GetUserByID(config.GetDB(), userID)
	if err != nil {
		return respond.Error(c, err)
	}
	if user == nil {
		return respond.Error(c, models.NewNotFoundError("user", userID))
	}

	if err := database.DeleteUser(config.GetDB(), userID); err != nil {
		return respond.Error(c, err)
	}

	return c.JSON(fiber.Map{"message": "User deactivated"})
}
