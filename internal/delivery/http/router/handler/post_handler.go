package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "roster/internal/delivery/context"
	"roster/internal/delivery/http/response"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostHandler holds dependencies for post-related handlers.
type PostHandler struct {
	uc     usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreatePost handles the post creation request.
func (h *PostHandler) CreatePost(c echo.Context) error {
	var input *usecase.CreatePostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}

	post, err := h.uc.CreatePost(c.Request().Context(), deliverycontext.GetIdentity(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, post, "Post created successfully")
}

// ListPosts handles the request for an account's posts.
func (h *PostHandler) ListPosts(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID format")
	}

	posts, err := h.uc.ListPosts(c.Request().Context(), deliverycontext.GetIdentity(c), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, posts, "")
}
