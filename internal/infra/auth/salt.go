package auth

import (
	"crypto/rand"
	"encoding/hex"

	"roster/internal/domain/service"

	"github.com/pkg/errors"
)

// saltBytes is the entropy per salt. 16 bytes (128 bits) is enough to make
// precomputed-table attacks useless.
const saltBytes = 16

// randSaltSource implements SaltSource with crypto/rand. Each account gets
// one salt, generated before its first persist and kept for its lifetime.
type randSaltSource struct{}

// NewRandSaltSource is the constructor for randSaltSource.
func NewRandSaltSource() service.SaltSource {
	return &randSaltSource{}
}

// Generate returns a fresh random salt as a hex string.
func (s *randSaltSource) Generate() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random salt")
	}

	return hex.EncodeToString(buf), nil
}
