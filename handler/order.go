package handler

import (
	"encoding/base64"
	"errors"
	"log"

	"park_manager/constants"
	"park_manager/helper"
	"park_manager/model"
	"park_manager/system"
	"park_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetMyOrders(c *fiber.Ctx) error {
	claim := helper.GetInfoUserFromToken(c)
	if claim.UserID == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, system.Ctrl.OrdersFor(claim.UserID))
}

func GetAllOrders(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, system.Ctrl.AllOrders())
}

// GetOrderDetail returns one order with its receipt summary and a QR code of
// the order ID for gate checks. Customers only see their own orders; admins
// see all.
func GetOrderDetail(c *fiber.Ctx) error {
	claim := helper.GetInfoUserFromToken(c)
	if claim.UserID == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	orderID := c.Params("orderId")
	order, found := system.Ctrl.OrderByID(orderID)
	if !found {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, nil)
	}
	if !claim.IsAdmin && order.CustomerID != claim.UserID {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, nil)
	}

	qrBase64 := ""
	qrBytes, err := utils.GenerateQRCode(order.OrderID, 400)
	if err != nil {
		log.Printf("QR generation failed for order %s: %v", order.OrderID, err)
	} else {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	response := fiber.Map{
		"order":       order,
		"totalAmount": order.Total(),
		"qrCode":      qrBase64,
	}
	if receipt, ok := system.Ctrl.ReceiptForOrder(order.OrderID); ok {
		response["receipt"] = receipt
		response["receiptLine"] = receipt.Summary()
	}
	if payment, ok := system.Ctrl.PaymentForOrder(order.OrderID); ok {
		response["payment"] = payment
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// CancelOrder cancels a whole order. The optional itemID must belong to the
// order when present; repeating a cancellation succeeds without further
// effect.
func CancelOrder(c *fiber.Ctx) error {
	claim := helper.GetInfoUserFromToken(c)
	if claim.UserID == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	input, ok := c.Locals("CancelOrderInput").(model.CancelOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_INPUT, nil)
	}

	order, found := system.Ctrl.OrderByID(input.OrderID)
	if found && !claim.IsAdmin && order.CustomerID != claim.UserID {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, nil)
	}

	cancelled, err := system.Ctrl.CancelOrder(input.OrderID, input.ItemID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SAVE_STATE, err)
	}
	if !cancelled {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, errors.New("no matching order and item"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"orderID": input.OrderID,
		"status":  constants.ORDER_STATUS_CANCELLED,
	})
}
