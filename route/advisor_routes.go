package route

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"careerguide/app/model"
	"careerguide/app/service"
	"careerguide/helper"
)

func AdvisorRoutes(api fiber.Router, svc service.AdvisorService) {
	api.Post("/chat", chat(svc))
	api.Get("/chat/:id", chatHistory(svc))
	api.Post("/recommendations/:id", recommend(svc))
}

func chat(svc service.AdvisorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.ChatRequest
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "invalid request body")
		}
		if err := helper.ValidateStruct(req); err != nil {
			return helper.ValidationError(c, err)
		}

		message, err := svc.Chat(c.Context(), req)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Chat service error: "+err.Error())
		}
		return c.JSON(message)
	}
}

func chatHistory(svc service.AdvisorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		messages, err := svc.History(c.Context(), c.Params("id"))
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(messages)
	}
}

func recommend(svc service.AdvisorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, err := svc.Recommend(c.Context(), c.Params("id"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Recommendations service error: "+err.Error())
		}
		return c.JSON(rec)
	}
}
