package helper

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateStruct runs the struct's validate tags.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// ValidationError writes a 422 with one message per failed field.
func ValidationError(c *fiber.Ctx, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	details := make([]fiber.Map, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, fiber.Map{
			"field":   fe.Field(),
			"message": fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
		})
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": details})
}
