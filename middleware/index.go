package middleware

import (
	"errors"
	"strings"

	"park_manager/constants"
	"park_manager/helper"
	"park_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// Protected accepts the access token from the HTTPOnly cookie or an
// Authorization bearer header and leaves the parsed token in Locals.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing token", errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// AdminOnly runs after Protected and rejects non-admin sessions.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim := helper.GetInfoUserFromToken(c)
		if claim.UserID == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no session"))
		}
		if !claim.IsAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}
		return c.Next()
	}
}
