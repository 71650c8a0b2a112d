package helper

import "github.com/gofiber/fiber/v2"

// JsonError writes the standard error body. The detail string carries the
// raw failure message for 500s; that trade-off is acceptable for an
// internal tool.
func JsonError(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(fiber.Map{"detail": detail})
}
