// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"roster/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create a new account.
type SignUpInput struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

// UpdateProfileInput defines a profile edit. Nil pointer fields are left
// unchanged; an empty password keeps the current credential.
type UpdateProfileInput struct {
	Name                 *string `json:"name"`
	Email                *string `json:"email"`
	Password             string  `json:"password"`
	PasswordConfirmation string  `json:"passwordConfirmation"`
}

// ListAccountsInput selects a page of the account index.
type ListAccountsInput struct {
	Page int
}

// --- Output DTOs ---

// SignUpOutput returns the newly created identity, already signed in.
type SignUpOutput struct {
	Identity     *entity.Identity
	SessionToken string
}

// ListAccountsOutput returns one page of accounts plus paging data.
type ListAccountsOutput struct {
	Accounts []*entity.Account
	Total    int64
	Page     int
	PerPage  int
}

// AccountUsecase defines the interface for account-related business operations.
// Every protected operation takes the acting identity explicitly; there is no
// ambient request state.
type AccountUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error)
	GetAccount(ctx context.Context, acting *entity.Identity, id uuid.UUID) (*entity.Account, error)
	ListAccounts(ctx context.Context, acting *entity.Identity, input *ListAccountsInput) (*ListAccountsOutput, error)
	UpdateProfile(ctx context.Context, acting *entity.Identity, targetID uuid.UUID, input *UpdateProfileInput) (*entity.Account, error)
	DeleteAccount(ctx context.Context, acting *entity.Identity, targetID uuid.UUID) error
}
