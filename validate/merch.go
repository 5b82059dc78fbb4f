package validate

import (
	"park_manager/model"

	"github.com/gofiber/fiber/v2"
)

func PurchaseMerch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return body[model.PurchaseMerchInput](c, "PurchaseMerchInput")
	}
}
