package timeline_http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"timeline-service/internal/custom_errors"
	"timeline-service/internal/infrastructure/inbound/http/middleware"
)

func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{Error: message})
}

// validationError picks the sentinel matching the first failed rule.
func validationError(err error, required, tooLong error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return custom_errors.ErrInvalidRequest
	}
	switch verrs[0].Tag() {
	case "required":
		return required
	case "max":
		return tooLong
	default:
		return custom_errors.ErrInvalidRequest
	}
}

// requestID returns the id assigned by middleware.RequestLogger, if any.
func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals(middleware.RequestIDKey).(string)
	return id
}
