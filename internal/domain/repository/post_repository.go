package repository

import (
	"context"
	"errors"

	"roster/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPostNotFound is returned when a post is not found.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the standard operations for post persistence.
type PostRepository interface {
	// Create persists a new post for its owning account.
	Create(ctx context.Context, post *entity.Post) error

	// ListByAccountID returns the posts owned by an account, newest first.
	ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.Post, error)

	// DeleteByAccountID removes every post owned by an account. Used inside
	// the account-deletion transaction.
	DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error
}
