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

type PostCreator interface {
	AddPost(ctx context.Context, username, content string) (*model.Post, error)
}

type CreatePostHandler struct {
	postService PostCreator
	validate    *validator.Validate
	log         ports.Logger
}

func NewCreatePostHandler(postService PostCreator, validate *validator.Validate, log ports.Logger) *CreatePostHandler {
	return &CreatePostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

type CreatePostRequestInternal struct {
	Content string `validate:"required,max=50"`
}

func (h *CreatePostHandler) CreatePost(c *fiber.Ctx) error {
	username, ok := usernameFromCookie(c)
	if !ok {
		h.log.Debug("CreatePost rejected without identity cookie")
		return writeError(c, fiber.StatusUnauthorized, custom_errors.ErrUnauthenticated.Error())
	}

	var req CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		h.log.Debug("CreatePost body parsing failed", slog.String("error", err.Error()))
		return writeError(c, fiber.StatusBadRequest, custom_errors.ErrContentRequired.Error())
	}

	validationReq := &CreatePostRequestInternal{
		Content: utils.CopyString(strings.TrimSpace(req.Content)),
	}
	if err := h.validate.Struct(validationReq); err != nil {
		verr := validationError(err, custom_errors.ErrContentRequired, custom_errors.ErrContentTooLong)
		h.log.Debug("CreatePost validation failed",
			slog.String("username", username),
			slog.String("error", err.Error()))
		return writeError(c, fiber.StatusBadRequest, verr.Error())
	}

	post, err := h.postService.AddPost(c.UserContext(), username, validationReq.Content)
	if err != nil {
		if custom_errors.IsValidation(err) {
			return writeError(c, fiber.StatusBadRequest, err.Error())
		}
		h.log.Error("Failed to create post",
			slog.String("request_id", requestID(c)),
			slog.String("username", username),
			slog.String("error", err.Error()))
		return writeError(c, fiber.StatusInternalServerError, "failed to create post")
	}

	h.log.Info("Post created", slog.Int64("post_id", post.ID), slog.String("username", post.Username))
	return c.JSON(CreatePostResponse{
		Success: true,
		Post:    NewPostResponse(post),
	})
}
