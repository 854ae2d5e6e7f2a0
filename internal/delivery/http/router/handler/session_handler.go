package handler

import (
	"log/slog"
	"net/http"

	"roster/config"
	deliverycontext "roster/internal/delivery/context"
	"roster/internal/delivery/http/response"
	"roster/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for login and session handlers.
type SessionHandler struct {
	uc     usecase.AuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// Login handles the password login request and sets the remember-me cookie.
func (h *SessionHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	setSessionCookie(c, h.cfg, output.SessionToken)

	return response.Success(c, http.StatusOK, output.Identity, "Login successful")
}

// Logout clears the remember-me cookie. The session token itself stays valid
// until the account's salt changes; logout only forgets it client-side.
func (h *SessionHandler) Logout(c echo.Context) error {
	clearSessionCookie(c, h.cfg)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// CurrentSession returns the identity resolved from the session cookie.
func (h *SessionHandler) CurrentSession(c echo.Context) error {
	return response.Success(c, http.StatusOK, deliverycontext.GetIdentity(c), "")
}
