package middleware

import "github.com/gofiber/fiber/v2"

// Role gates a route on the role claim set by Auth.
func Role(required string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRole, ok := c.Locals("role").(string)
		if !ok || userRole != required {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Access denied"})
		}
		return c.Next()
	}
}
