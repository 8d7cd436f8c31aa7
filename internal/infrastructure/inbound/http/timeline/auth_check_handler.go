package timeline_http

import (
	"github.com/gofiber/fiber/v2"
)

type AuthCheckHandler struct{}

func NewAuthCheckHandler() *AuthCheckHandler {
	return &AuthCheckHandler{}
}

// Check trusts the cookie as-is; the user row is not looked up.
func (h *AuthCheckHandler) Check(c *fiber.Ctx) error {
	username, ok := usernameFromCookie(c)
	if !ok {
		return c.JSON(AuthCheckResponse{Authenticated: false})
	}
	return c.JSON(AuthCheckResponse{Authenticated: true, Username: username})
}
