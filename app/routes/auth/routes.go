package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"hillcrest-academy/app/config"
	"hillcrest-academy/app/database"
	"hillcrest-academy/app/models"
	"hillcrest-academy/app/routes/respond"
)

func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api/auth")
	api.Post("/login", LoginAPI)
	api.Post("/logout", AuthMiddleware, LogoutAPI)
	api.Post("/change-password", AuthMiddleware, ChangePasswordAPI)
	api.Get("/me", AuthMiddleware, CurrentUserAPI)
	api.Delete("/users/:id", AuthMiddleware, RoleMiddleware(models.RoleAdmin), DeleteUserAPI)
}

// AuthMiddleware validates the JWT from cookie or Authorization header,
// checks the session it is bound to still exists, and sets the user on the
// request context.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	session, err := database.GetSessionByID(config.GetDB(), claims.SessionID)
	if err != nil {
		return respond.Error(c, err)
	}
	if session == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Session expired or revoked"})
	}

	user := &models.User{
		ID:        claims.UserID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Role:      claims.Role,
		IsActive:  true,
	}

	c.Locals("user_id", user.ID)
	c.Locals("session_id", session.ID)
	c.Locals("user", user)

	return c.Next()
}

// RoleMiddleware checks if the user holds one of the allowed roles.
func RoleMiddleware(allowedRoles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		for _, role := range allowedRoles {
			if user.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}
}

// RequireStudentManager admits users whose role may create, update or delete
// student records and their events.
func RequireStudentManager(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	if !user.CanManageStudents() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}
	return c.Next()
}
