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

func SubmitReview(c *fiber.Ctx) error {
	claim := helper.GetInfoUserFromToken(c)
	if claim.UserID == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	input, ok := c.Locals("ReviewInput").(model.ReviewInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_INPUT, nil)
	}

	review, err := system.Ctrl.SubmitReview(claim.UserID, input)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SAVE_STATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, review)
}

func GetReviews(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, system.Ctrl.Reviews())
}

// ModerateReview lets an admin tag a review comment, keeping the original
// text behind the tag.
func ModerateReview(c *fiber.Ctx) error {
	reviewID := c.Params("reviewId")

	review, err := system.Ctrl.ModerateReview(reviewID)
	if errors.Is(err, system.ErrReviewNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.REVIEW_NOT_FOUND, nil)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SAVE_STATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, review)
}
