package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// User handlers

// Me returns the public view of the authenticated user.
func Me(c *fiber.Ctx) error {
	username := c.Locals("username").(string)
	return c.JSON(fiber.Map{
		"username": username,
	})
}
