package validate

import (
	"park_manager/model"

	"github.com/gofiber/fiber/v2"
)

func SubmitReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return body[model.ReviewInput](c, "ReviewInput")
	}
}
