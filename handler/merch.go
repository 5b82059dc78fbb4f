package handler

import (
	"errors"

	"park_manager/constants"
	"park_manager/model"
	"park_manager/system"
	"park_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func PurchaseMerch(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no session"))
	}

	input, ok := c.Locals("PurchaseMerchInput").(model.PurchaseMerchInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_INPUT, nil)
	}

	order, err := system.Ctrl.PurchaseMerch(user, input)
	if errors.Is(err, system.ErrOutOfStock) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.OUT_OF_STOCK, nil, "qty")
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SAVE_STATE, err)
	}

	PublishStats()
	sendOrderReceipt(user, order)

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{"order": order})
}

func GetMerchandise(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, system.Ctrl.Merchandise())
}
