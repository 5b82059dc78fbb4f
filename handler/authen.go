package handler

import (
	"errors"

	"park_manager/constants"
	"park_manager/helper"
	"park_manager/model"
	"park_manager/system"
	"park_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// publicUser is the response shape for a user; the stored password never
// leaves the process.
func publicUser(u *model.User) fiber.Map {
	return fiber.Map{
		"userID":       u.UserID,
		"username":     u.Username,
		"email":        u.Email,
		"fullName":     u.FullName,
		"isAdmin":      u.IsAdmin,
		"customerType": u.CustomerType,
	}
}

func Register(c *fiber.Ctx) error {
	input, ok := c.Locals("RegisterInput").(model.RegisterInput)
	if !ok {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_INPUT, nil, "general")
	}

	user, err := system.Auth.Register(input)
	if errors.Is(err, system.ErrDuplicateUsername) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.USERNAME_TAKEN, nil, "username")
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SAVE_STATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, publicUser(user))
}

func Login(c *fiber.Ctx) error {
	input, ok := c.Locals("LoginInput").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("username and password are required"))
	}

	user := system.Auth.Authenticate(input.Username, input.Password)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, errors.New("credentials do not match"))
	}

	tokenClaim := model.TokenClaim{
		UserID:   user.UserID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}

	token, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"message": "login success",
		"user":    publicUser(user),
	})
}

func RefreshToken(c *fiber.Ctx) error {
	refreshCookie := c.Cookies("refresh_token")
	if refreshCookie == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "refresh token not found"})
	}

	token, err := helper.ParseToken(refreshCookie)
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid refresh token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}

	userID, ok := claims["userID"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid userID in payload"})
	}
	username, ok := claims["username"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid username in payload"})
	}
	isAdmin, _ := claims["isAdmin"].(bool)

	tokenClaim := model.TokenClaim{
		UserID:   userID,
		Username: username,
		IsAdmin:  isAdmin,
	}

	newAccessToken, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not generate access token"})
	}
	newRefreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not generate refresh token"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    newAccessToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    newRefreshToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})

	return c.JSON(fiber.Map{"message": "token refreshed"})
}

func Logout(c *fiber.Ctx) error {
	c.ClearCookie("access_token", "refresh_token")
	return c.JSON(fiber.Map{"message": "logged out"})
}

func Me(c *fiber.Ctx) error {
	claim := helper.GetInfoUserFromToken(c)
	if claim.UserID == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no session"))
	}

	user := system.Auth.ByID(claim.UserID)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("user no longer exists"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, publicUser(user))
}
