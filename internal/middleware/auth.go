package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/heizlog/heizlog/internal/config"
	"github.com/heizlog/heizlog/internal/dto"
)

// JWTProtected rejects requests without a valid access token. Every handler
// behind it can resolve the user via tenant.UserFromContext.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
		},
	})
}
