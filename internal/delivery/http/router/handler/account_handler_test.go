package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roster/config"
	"roster/internal/domain/entity"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAccountUsecase returns canned responses for handler tests.
type stubAccountUsecase struct {
	usecase.AccountUsecase

	signUpOutput *usecase.SignUpOutput
	signUpErr    error
}

func (s *stubAccountUsecase) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	return s.signUpOutput, s.signUpErr
}

func TestAccountHandler_SignUp_SetsSessionCookie(t *testing.T) {
	accountID := uuid.New()
	stub := &stubAccountUsecase{
		signUpOutput: &usecase.SignUpOutput{
			Identity: &entity.Identity{
				ID:    accountID,
				Name:  "Hans Meier",
				Email: "example@test.org",
			},
			SessionToken: "issued-token",
		},
	}

	cfg := &config.Config{
		Session: &config.SessionConfig{CookieName: "remember_token"},
	}
	handler := NewAccountHandler(stub, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	body := `{"name":"Hans Meier","email":"example@test.org","password":"foobar23","passwordConfirmation":"foobar23"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.SignUp(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	response := rec.Result()
	defer response.Body.Close()

	var sessionCookie *http.Cookie
	for _, cookie := range response.Cookies() {
		if cookie.Name == "remember_token" {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie, "signup must set the remember-me cookie")
	assert.Equal(t, "issued-token", sessionCookie.Value)
	assert.True(t, sessionCookie.HttpOnly)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, accountID.String())
	assert.Contains(t, responseBody, "Hans Meier")
	assert.NotContains(t, responseBody, "salt")
	assert.NotContains(t, responseBody, "passwordDigest")
}

func TestAccountHandler_GetAccount_InvalidID(t *testing.T) {
	handler := NewAccountHandler(&stubAccountUsecase{}, &config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/accounts/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.GetAccount(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}
