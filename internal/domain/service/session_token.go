package service

import "github.com/google/uuid"

// SessionToken is the persistent "remember me" credential: the account id and
// a copy of its salt at issuance time. Whoever holds it can authenticate as
// the account until the salt changes, which makes it as powerful as the
// password itself.
type SessionToken struct {
	AccountID uuid.UUID
	Salt      string
}

// SessionTokenCodec serializes a SessionToken for cookie transport and back.
// The encoding is tamper-evident framing only; the authenticator still
// verifies the embedded salt against the store on every resume.
type SessionTokenCodec interface {
	// Encode produces the opaque cookie value for the token.
	Encode(token SessionToken) (string, error)

	// Decode parses a cookie value. It returns an error for malformed,
	// tampered, or expired values; the caller treats every error as a
	// rejected session.
	Decode(value string) (SessionToken, error)
}
