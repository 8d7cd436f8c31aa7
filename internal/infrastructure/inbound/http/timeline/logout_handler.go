package timeline_http

import (
	"github.com/gofiber/fiber/v2"
)

type LogoutHandler struct{}

func NewLogoutHandler() *LogoutHandler {
	return &LogoutHandler{}
}

func (h *LogoutHandler) Logout(c *fiber.Ctx) error {
	clearUsernameCookie(c)
	return c.JSON(SuccessResponse{Success: true})
}
