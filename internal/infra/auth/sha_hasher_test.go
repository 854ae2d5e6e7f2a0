package auth

import (
	"testing"

	"roster/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func TestSHAHasher_Digest(t *testing.T) {
	hasher := NewSHAHasher()

	digest := hasher.Digest("abc--secret")
	assert.Len(t, digest, 64)
	assert.Regexp(t, "^[0-9a-f]{64}$", digest)

	// Deterministic: same input, same digest.
	assert.Equal(t, digest, hasher.Digest("abc--secret"))

	// Known vector for SHA-256("abc").
	assert.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		hasher.Digest("abc"))
}

func TestSHAHasher_DigestVariesWithSalt(t *testing.T) {
	hasher := NewSHAHasher()

	a := service.DeriveDigest(hasher, "salt-a", "foobar23")
	b := service.DeriveDigest(hasher, "salt-b", "foobar23")

	// Identical passwords under different salts must not collide.
	assert.NotEqual(t, a, b)

	// Idempotence for a fixed (salt, password) pair.
	assert.Equal(t, a, service.DeriveDigest(hasher, "salt-a", "foobar23"))
}

func TestSHAHasher_Matches(t *testing.T) {
	hasher := NewSHAHasher()

	digest := service.DeriveDigest(hasher, "salt", "foobar23")

	assert.True(t, hasher.Matches(service.DeriveDigest(hasher, "salt", "foobar23"), digest))
	assert.False(t, hasher.Matches(service.DeriveDigest(hasher, "salt", "wrong"), digest))
	assert.False(t, hasher.Matches("", digest))
}

func TestRandSaltSource_Generate(t *testing.T) {
	source := NewRandSaltSource()

	first, err := source.Generate()
	assert.NoError(t, err)
	assert.Regexp(t, "^[0-9a-f]{32}$", first)

	second, err := source.Generate()
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}
