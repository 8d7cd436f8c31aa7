package timeline_http

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

const (
	UsernameCookie       = "username"
	usernameCookieMaxAge = 30 * 24 * 60 * 60
)

// setUsernameCookie stores the identity as a plain, unsigned value.
func setUsernameCookie(c *fiber.Ctx, username string) {
	c.Cookie(&fiber.Cookie{
		Name:     UsernameCookie,
		Value:    url.PathEscape(username),
		Path:     "/",
		MaxAge:   usernameCookieMaxAge,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteDisabled,
	})
}

func clearUsernameCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     UsernameCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0).UTC(),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteDisabled,
	})
}

// usernameFromCookie returns false when the cookie is absent or blank.
func usernameFromCookie(c *fiber.Ctx) (string, bool) {
	raw := utils.CopyString(c.Cookies(UsernameCookie))
	if raw == "" {
		return "", false
	}
	username, err := url.PathUnescape(raw)
	if err != nil {
		username = raw
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return "", false
	}
	return username, true
}
