package tenant

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CurrentUser is the identity resolved from the request's access token.
type CurrentUser struct {
	ID    uuid.UUID
	Email string
	Name  string
}

// UserFromContext resolves the authenticated user from JWT claims in context.
// It is resolved fresh on every call; there is no per-process session state.
func UserFromContext(c *fiber.Ctx) (*CurrentUser, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("missing sub claim")
	}

	id, err := uuid.Parse(sub)
	if err != nil {
		return nil, err
	}

	user := &CurrentUser{ID: id}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		user.Name = name
	}
	return user, nil
}

// UserID extracts just the user UUID from JWT claims in context.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	user, err := UserFromContext(c)
	if err != nil {
		return uuid.Nil, err
	}
	return user.ID, nil
}
