package helper

import (
	"fmt"
	"time"

	"park_manager/config"
	"park_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JwtSecret reads the signing key through config so .env is honored no
// matter which package touches the key first.
func JwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userID"] = tokenClaim.UserID
	claims["username"] = tokenClaim.Username
	claims["isAdmin"] = tokenClaim.IsAdmin
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	return token.SignedString(JwtSecret())
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userID"] = tokenClaim.UserID
	claims["username"] = tokenClaim.Username
	claims["isAdmin"] = tokenClaim.IsAdmin
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	return token.SignedString(JwtSecret())
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret(), nil
	})
}

// GetInfoUserFromToken pulls the session identity out of the parsed token
// the Protected middleware left in Locals. A zero claim means no valid
// session.
func GetInfoUserFromToken(c *fiber.Ctx) model.TokenClaim {
	var empty model.TokenClaim

	u := c.Locals("user")
	if u == nil {
		return empty
	}
	token, ok := u.(*jwt.Token)
	if !ok || token == nil {
		return empty
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return empty
	}

	claim := model.TokenClaim{}
	if v, ok := claims["userID"].(string); ok {
		claim.UserID = v
	}
	if v, ok := claims["username"].(string); ok {
		claim.Username = v
	}
	if v, ok := claims["isAdmin"].(bool); ok {
		claim.IsAdmin = v
	}
	return claim
}
