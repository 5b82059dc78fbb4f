package validate

import (
	"park_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CancelOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return body[model.CancelOrderInput](c, "CancelOrderInput")
	}
}
