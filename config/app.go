package config

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewFiberApp builds the HTTP app with CORS, access logging and panic
// recovery. corsOrigins is the comma-separated allow list from the
// environment; "*" is permissive.
func NewFiberApp(corsOrigins string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Career Guidance Platform API",

		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"detail": err.Error()})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New(NewLoggerConfig()))
	app.Use(recover.New())

	return app
}
