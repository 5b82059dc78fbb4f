package validate

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// body parses the request body into input, runs struct validation and stores
// the value under key in Locals for the handler. Every input middleware in
// this package goes through here.
func body[T any](c *fiber.Ctx, key string) error {
	var input T

	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Invalid input %s", err.Error()),
		})
	}

	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Locals(key, input)
	return c.Next()
}
