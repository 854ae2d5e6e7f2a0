// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"roster/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its normalized email address.
	// Callers must normalize the email first; the stored value is already
	// lower-cased.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account. The storage layer enforces email
	// uniqueness, so a concurrent duplicate signup fails here rather than
	// only in the pre-check.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account. Owned posts are deleted with it.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns a page of accounts ordered by name, plus the total count.
	List(ctx context.Context, offset, limit int) ([]*entity.Account, int64, error)
}
