// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"roster/internal/domain/service"
)

// shaHasher is a concrete implementation of the CredentialHasher interface
// using SHA-256. The digest must be deterministic: the same salt and password
// produce the same 64-char hex string on every host, which is what lets a
// login recompute and compare against the stored credential.
type shaHasher struct{}

// NewSHAHasher is the constructor for shaHasher.
// It returns the implementation as a service.CredentialHasher interface.
func NewSHAHasher() service.CredentialHasher {
	return &shaHasher{}
}

// Digest computes the lowercase hex SHA-256 digest of the input.
func (h *shaHasher) Digest(input string) string {
	sum := sha256.Sum256([]byte(input))

	return hex.EncodeToString(sum[:])
}

// Matches compares two digests in constant time. Both values are hex digests
// of fixed length, so timing reveals nothing about where they diverge.
func (h *shaHasher) Matches(derived, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(derived), []byte(stored)) == 1
}
