// Package access holds the per-request authorization predicates. The gate is
// pure: it never touches storage, it only inspects the identity the caller
// resolved and passed in explicitly.
package access

import (
	"roster/internal/domain/entity"

	"github.com/google/uuid"
)

// IsAuthenticated reports whether an identity was resolved for the request.
func IsAuthenticated(identity *entity.Identity) bool {
	return identity != nil
}

// IsSelf reports whether the identity is the target account. Editing a
// profile is gated on this; admins get no bypass here.
func IsSelf(identity *entity.Identity, targetID uuid.UUID) bool {
	return identity != nil && identity.ID == targetID
}

// IsAdmin reports whether the identity holds elevated rights.
func IsAdmin(identity *entity.Identity) bool {
	return identity != nil && identity.Admin
}

// CanUpdateAccount decides whether the acting identity may edit the target
// account. Authentication is checked before ownership: ownership is
// meaningless without a resolved identity.
func CanUpdateAccount(acting *entity.Identity, targetID uuid.UUID) bool {
	if !IsAuthenticated(acting) {
		return false
	}

	return IsSelf(acting, targetID)
}

// CanDeleteAccount decides whether the acting identity may delete the target
// account. Deletion is admin-only.
func CanDeleteAccount(acting *entity.Identity) bool {
	if !IsAuthenticated(acting) {
		return false
	}

	return IsAdmin(acting)
}
