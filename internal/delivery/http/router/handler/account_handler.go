// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"roster/config"
	deliverycontext "roster/internal/delivery/context"
	"roster/internal/delivery/http/response"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountView is the public projection of an account. Credential material
// (salt, password digest) never leaves the server.
type AccountView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"createdAt"`
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, cfg *config.Config, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// SignUp handles the account registration request. A successful signup signs
// the new account in immediately.
func (h *AccountHandler) SignUp(c echo.Context) error {
	var input *usecase.SignUpInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	output, err := h.uc.SignUp(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	setSessionCookie(c, h.cfg, output.SessionToken)

	return response.Success(c, http.StatusCreated, output.Identity, "Account registered successfully")
}

// GetAccount handles the account profile request.
func (h *AccountHandler) GetAccount(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID format")
	}

	account, err := h.uc.GetAccount(c.Request().Context(), deliverycontext.GetIdentity(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &AccountView{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		Admin:     account.Admin,
		CreatedAt: account.CreatedAt,
	}, "")
}

// ListAccounts handles the paginated account index request.
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid page number")
		}
		page = parsed
	}

	output, err := h.uc.ListAccounts(c.Request().Context(), deliverycontext.GetIdentity(c), &usecase.ListAccountsInput{Page: page})
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*AccountView, 0, len(output.Accounts))
	for _, account := range output.Accounts {
		views = append(views, &AccountView{
			ID:        account.ID,
			Name:      account.Name,
			Email:     account.Email,
			Admin:     account.Admin,
			CreatedAt: account.CreatedAt,
		})
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"accounts": views,
		"total":    output.Total,
		"page":     output.Page,
		"perPage":  output.PerPage,
	}, "")
}

// UpdateProfile handles the profile edit request.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID format")
	}

	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	account, err := h.uc.UpdateProfile(c.Request().Context(), deliverycontext.GetIdentity(c), targetID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &AccountView{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		Admin:     account.Admin,
		CreatedAt: account.CreatedAt,
	}, "Profile updated successfully")
}

// DeleteAccount handles the account removal request.
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID format")
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), deliverycontext.GetIdentity(c), targetID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Account deleted"}, "Account deleted successfully")
}

// setSessionCookie writes the remember-me cookie with the issued session token.
func setSessionCookie(c echo.Context, cfg *config.Config, token string) {
	cookieName := config.DefaultSessionCookieName
	ttl := 14 * 24 * time.Hour
	if cfg.Session != nil {
		if cfg.Session.CookieName != "" {
			cookieName = cfg.Session.CookieName
		}
		if cfg.Session.TTL > 0 {
			ttl = cfg.Session.TTL
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the remember-me cookie.
func clearSessionCookie(c echo.Context, cfg *config.Config) {
	cookieName := config.DefaultSessionCookieName
	if cfg.Session != nil && cfg.Session.CookieName != "" {
		cookieName = cfg.Session.CookieName
	}

	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
