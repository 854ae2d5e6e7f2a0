package middleware

import (
	"roster/config"
	deliverycontext "roster/internal/delivery/context"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/service"
	"roster/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware resolves the remember-me cookie into an authenticated
// identity for downstream handlers.
type AuthMiddleware struct {
	tokenCodec service.SessionTokenCodec
	authUC     usecase.AuthUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenCodec service.SessionTokenCodec, authUC usecase.AuthUsecase, cfg *config.Config) *AuthMiddleware {
	cookieName := config.DefaultSessionCookieName
	if cfg.Session != nil && cfg.Session.CookieName != "" {
		cookieName = cfg.Session.CookieName
	}

	return &AuthMiddleware{
		tokenCodec: tokenCodec,
		authUC:     authUC,
		cookieName: cookieName,
	}
}

// Authenticate validates the session cookie and stores the resolved identity
// in the request context. Requests without a valid session are rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return errors.Wrap(domainerrors.ErrSessionInvalid, "session cookie missing")
		}

		token, err := m.tokenCodec.Decode(cookie.Value)
		if err != nil {
			return errors.Wrap(domainerrors.ErrSessionInvalid, "session cookie malformed")
		}

		identity, err := m.authUC.ResumeSession(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}
