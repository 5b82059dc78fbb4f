package validate

import (
	"park_manager/model"

	"github.com/gofiber/fiber/v2"
)

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return body[model.RegisterInput](c, "RegisterInput")
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return body[model.LoginInput](c, "LoginInput")
	}
}
