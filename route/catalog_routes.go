package route

import (
	"github.com/gofiber/fiber/v2"

	"careerguide/app/service"
	"careerguide/helper"
)

func CatalogRoutes(api fiber.Router, svc service.CatalogService) {
	api.Get("/universities", listUniversities(svc))
	api.Get("/scholarships", listScholarships(svc))
}

func listUniversities(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		universities, err := svc.ListUniversities(c.Context(), c.Query("country"), c.Query("program"))
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(universities)
	}
}

func listScholarships(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scholarships, err := svc.ListScholarships(c.Context(), c.Query("country"), c.Query("field"))
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(scholarships)
	}
}
