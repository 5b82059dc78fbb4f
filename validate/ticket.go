package validate

import (
	"park_manager/model"

	"github.com/gofiber/fiber/v2"
)

func PurchaseTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return body[model.PurchaseTicketInput](c, "PurchaseTicketInput")
	}
}
