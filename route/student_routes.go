package route

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"careerguide/app/model"
	"careerguide/app/service"
	"careerguide/helper"
)

func StudentRoutes(api fiber.Router, svc service.StudentService) {
	api.Post("/students", createStudent(svc))
	api.Get("/students/:id", getStudent(svc))
	api.Put("/students/:id", updateStudent(svc))
}

func createStudent(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.StudentProfileRequest
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "invalid request body")
		}
		if err := helper.ValidateStruct(req); err != nil {
			return helper.ValidationError(c, err)
		}

		profile, err := svc.Create(c.Context(), req)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(profile)
	}
}

func getStudent(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := svc.Get(c.Context(), c.Params("id"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(profile)
	}
}

func updateStudent(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.StudentProfileUpdate
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "invalid request body")
		}
		if err := helper.ValidateStruct(req); err != nil {
			return helper.ValidationError(c, err)
		}

		profile, err := svc.Update(c.Context(), c.Params("id"), req)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(profile)
	}
}
