package auth

import (
	"testing"
	"time"

	"roster/config"
	"roster/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T, ttl time.Duration) service.SessionTokenCodec {
	t.Helper()

	cfg := &config.Config{
		Session: &config.SessionConfig{
			Secret: "test-secret",
			TTL:    ttl,
		},
	}

	codec, err := NewJWTTokenCodec(cfg)
	require.NoError(t, err)

	return codec
}

func TestJWTTokenCodec_RoundTrip(t *testing.T) {
	codec := newTestCodec(t, time.Hour)

	token := service.SessionToken{
		AccountID: uuid.New(),
		Salt:      "0123456789abcdef0123456789abcdef",
	}

	value, err := codec.Encode(token)
	require.NoError(t, err)
	assert.NotEmpty(t, value)

	decoded, err := codec.Decode(value)
	require.NoError(t, err)
	assert.Equal(t, token.AccountID, decoded.AccountID)
	assert.Equal(t, token.Salt, decoded.Salt)
}

func TestJWTTokenCodec_RejectsTamperedValue(t *testing.T) {
	codec := newTestCodec(t, time.Hour)

	value, err := codec.Encode(service.SessionToken{AccountID: uuid.New(), Salt: "salt"})
	require.NoError(t, err)

	_, err = codec.Decode(value + "x")
	assert.Error(t, err)

	_, err = codec.Decode("not-a-token")
	assert.Error(t, err)
}

func TestJWTTokenCodec_RejectsExpiredValue(t *testing.T) {
	codec := newTestCodec(t, -time.Minute)

	value, err := codec.Encode(service.SessionToken{AccountID: uuid.New(), Salt: "salt"})
	require.NoError(t, err)

	_, err = codec.Decode(value)
	assert.Error(t, err)
}

func TestJWTTokenCodec_RejectsForeignSecret(t *testing.T) {
	codec := newTestCodec(t, time.Hour)

	other, err := NewJWTTokenCodec(&config.Config{
		Session: &config.SessionConfig{Secret: "other-secret", TTL: time.Hour},
	})
	require.NoError(t, err)

	value, err := other.Encode(service.SessionToken{AccountID: uuid.New(), Salt: "salt"})
	require.NoError(t, err)

	_, err = codec.Decode(value)
	assert.Error(t, err)
}

func TestNewJWTTokenCodec_RequiresSecret(t *testing.T) {
	_, err := NewJWTTokenCodec(&config.Config{Session: &config.SessionConfig{}})
	assert.Error(t, err)
}
