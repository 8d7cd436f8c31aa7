package timeline_http

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"timeline-service/internal/custom_errors"
	model "timeline-service/internal/domain/models"
	ports "timeline-service/internal/domain/ports/output"
)

type UserLoginer interface {
	GetOrCreateUser(ctx context.Context, username string) (*model.User, error)
}

type LoginHandler struct {
	userService UserLoginer
	validate    *validator.Validate
	log         ports.Logger
}

func NewLoginHandler(userService UserLoginer, validate *validator.Validate, log ports.Logger) *LoginHandler {
	return &LoginHandler{
		userService: userService,
		validate:    validate,
		log:         log,
	}
}

type LoginRequestInternal struct {
	Username string `validate:"required"`
}

func (h *LoginHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		h.log.Debug("Login body parsing failed", slog.String("error", err.Error()))
		return writeError(c, fiber.StatusBadRequest, custom_errors.ErrUsernameRequired.Error())
	}

	validationReq := &LoginRequestInternal{
		Username: utils.CopyString(strings.TrimSpace(req.Username)),
	}
	if err := h.validate.Struct(validationReq); err != nil {
		verr := validationError(err, custom_errors.ErrUsernameRequired, custom_errors.ErrInvalidRequest)
		h.log.Debug("Login validation failed", slog.String("error", err.Error()))
		return writeError(c, fiber.StatusBadRequest, verr.Error())
	}

	user, err := h.userService.GetOrCreateUser(c.UserContext(), validationReq.Username)
	if err != nil {
		if custom_errors.IsValidation(err) {
			return writeError(c, fiber.StatusBadRequest, err.Error())
		}
		h.log.Error("Failed to log in",
			slog.String("request_id", requestID(c)),
			slog.String("username", validationReq.Username),
			slog.String("error", err.Error()))
		return writeError(c, fiber.StatusInternalServerError, "failed to log in")
	}

	setUsernameCookie(c, user.Username)

	h.log.Info("User logged in", slog.Int64("user_id", user.ID), slog.String("username", user.Username))
	return c.JSON(LoginResponse{
		Success: true,
		User: UserResponse{
			ID:       user.ID,
			Username: user.Username,
		},
	})
}
