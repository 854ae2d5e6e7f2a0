// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Account is the core entity in the system, representing a single registered user.
// Salt and PasswordDigest together form the stored credential; the plaintext
// password never appears on this struct.
type Account struct {
	ID             uuid.UUID `json:"id"`         // The unique identifier for the account, assigned at creation.
	Name           string    `json:"name"`       // The account holder's display name.
	Email          string    `json:"email"`      // The login identifier, stored in normalized (lower-cased) form.
	Salt           string    `json:"-"`          // Per-account random value, assigned once before the first persist and never rotated.
	PasswordDigest string    `json:"-"`          // Salted digest of the password. Recomputed on every password change.
	Admin          bool      `json:"admin"`      // Grants account-wide destructive rights. Defaults to false.
	CreatedAt      time.Time `json:"created_at"` // Timestamp of when this account was created.
	UpdatedAt      time.Time `json:"updated_at"` // Timestamp of the last modification to this account.
}

// Identity is the resolved, authenticated view of an account. It carries just
// enough for authorization decisions and is passed explicitly to every
// protected operation; there is no ambient "current user".
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Admin bool      `json:"admin"`
}

// Identity returns the authenticated view of the account.
func (a *Account) Identity() *Identity {
	return &Identity{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
		Admin: a.Admin,
	}
}

// NormalizeEmail returns the canonical form of an email address used for
// storage and lookup. Uniqueness is case-insensitive, so both sides of every
// comparison go through this.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
