package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"tasktracker/internal/auth"
	"tasktracker/internal/config"
	"tasktracker/internal/repository"
	"tasktracker/pkg/logger"
)

func unauthorized(c *fiber.Ctx, message string) error {
	c.Set("WWW-Authenticate", "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": message,
		"success": false,
		"status":  401,
	})
}

// UseToken guards a route with bearer-token authentication. On success
// the resolved user id and username are stored in locals.
func UseToken(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return unauthorized(c, "No token provided")
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return unauthorized(c, "Invalid token format")
	}

	subject, err := auth.VerifyToken(parts[1])
	if err != nil {
		logger.SecurityLogger.Warn("Token verification failed", zap.Error(err))
		return unauthorized(c, "Invalid token")
	}

	// The subject must still resolve to a live user row.
	user, err := repository.GetUserByUsername(config.DB, subject)
	if err != nil {
		logger.SecurityLogger.Warn("Token subject no longer exists", zap.String("subject", subject))
		return unauthorized(c, "Invalid token")
	}

	c.Locals("userID", user.ID)
	c.Locals("username", user.Username)
	return c.Next()
}
