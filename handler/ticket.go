package handler

import (
	"errors"

	"park_manager/constants"
	"park_manager/helper"
	"park_manager/model"
	"park_manager/system"
	"park_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// currentUser resolves the session claim to the stored user record.
func currentUser(c *fiber.Ctx) *model.User {
	claim := helper.GetInfoUserFromToken(c)
	if claim.UserID == "" {
		return nil
	}
	return system.Auth.ByID(claim.UserID)
}

func PurchaseTicket(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no session"))
	}

	input, ok := c.Locals("PurchaseTicketInput").(model.PurchaseTicketInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_INPUT, nil)
	}

	order, err := system.Ctrl.PurchaseTicket(user, input)
	if errors.Is(err, system.ErrQuotaExceeded) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.QUOTA_EXCEEDED, nil, "qty")
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SAVE_STATE, err)
	}

	PublishStats()
	sendOrderReceipt(user, order)

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{"order": order})
}

func GetTickets(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, system.Ctrl.Tickets())
}

// GetTicketsByPark filters the ticket ledger by park name slug, e.g.
// /ticket/park/sunway-lagoon.
func GetTicketsByPark(c *fiber.Ctx) error {
	parkSlug := c.Params("slug")
	return utils.SuccessResponse(c, fiber.StatusOK, system.Ctrl.TicketsForPark(parkSlug))
}

func sendOrderReceipt(user *model.User, order *model.Order) {
	if user.Email == "" || len(order.Items) == 0 {
		return
	}
	receiptLine := ""
	if receipt, ok := system.Ctrl.ReceiptForOrder(order.OrderID); ok {
		receiptLine = receipt.Summary()
	}
	utils.SendReceiptEmail(user.Email, utils.ReceiptEmailData{
		OrderID:     order.OrderID,
		ReceiptLine: receiptLine,
		ItemName:    order.Items[0].Name,
		Quantity:    order.Items[0].Quantity,
		TotalAmount: order.Total(),
		Date:        order.Date,
	})
}
