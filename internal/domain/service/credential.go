// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// saltSeparator joins the salt and the plaintext before hashing. Changing it
// would invalidate every stored digest.
const saltSeparator = "--"

// CredentialHasher defines the interface for deriving and checking the stored
// password credential. Implementations must be deterministic across process
// restarts; all randomness comes from the caller-supplied salt.
type CredentialHasher interface {
	// Digest computes the fixed-length hex digest of the input.
	Digest(input string) string

	// Matches compares a derived digest against the stored one in constant time.
	Matches(derived, stored string) bool
}

// SaltSource produces per-account salts. A salt is generated exactly once,
// before the account's first persist, and never regenerated afterwards.
type SaltSource interface {
	Generate() (string, error)
}

// DeriveDigest computes the credential stored for an account:
// Digest(salt + "--" + password).
func DeriveDigest(h CredentialHasher, salt, password string) string {
	return h.Digest(salt + saltSeparator + password)
}
