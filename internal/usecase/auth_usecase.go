package usecase

import (
	"context"

	"roster/internal/domain/entity"
	"roster/internal/domain/service"
)

// LoginInput defines the data required for a password login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginOutput returns the authenticated identity and the remember-me cookie value.
type LoginOutput struct {
	Identity     *entity.Identity
	SessionToken string
}

// AuthUsecase is the authenticator: it resolves request credentials into an
// identity or a rejection. Both entry points fail closed and report every
// failure with the same rejection shape.
type AuthUsecase interface {
	// Login verifies an email/password pair and issues a session token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ResumeSession re-authenticates from a persisted session token. It
	// succeeds iff the token's salt exactly equals the account's stored salt.
	ResumeSession(ctx context.Context, token service.SessionToken) (*entity.Identity, error)
}
