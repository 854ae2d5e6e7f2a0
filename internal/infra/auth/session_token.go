package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"roster/config"
	"roster/internal/domain/service"
)

// jwtTokenCodec implements SessionTokenCodec with an HS256 JWT. The token
// body is exactly the {accountID, salt} pair; the signature stops cookie
// tampering but grants no authority of its own. Authority comes from the
// salt matching the store when the session is resumed.
type jwtTokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTTokenCodec is the constructor for jwtTokenCodec.
func NewJWTTokenCodec(cfg *config.Config) (service.SessionTokenCodec, error) {
	if cfg.Session == nil || cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtTokenCodec{
		secret: []byte(cfg.Session.Secret),
		ttl:    cfg.Session.TTL,
	}, nil
}

// Encode signs the session token into a cookie value.
func (c *jwtTokenCodec) Encode(token service.SessionToken) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  token.AccountID.String(),
		"salt": token.Salt,
		"iat":  now.Unix(),
		"exp":  now.Add(c.ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Decode parses and verifies a cookie value back into a session token.
func (c *jwtTokenCodec) Decode(value string) (service.SessionToken, error) {
	parsed, err := jwt.Parse(value, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return c.secret, nil
	})
	if err != nil {
		return service.SessionToken{}, errors.Wrap(err, "failed to parse session token")
	}
	if !parsed.Valid {
		return service.SessionToken{}, errors.New("session token is not valid")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return service.SessionToken{}, errors.New("unexpected session token claims")
	}

	sub, _ := claims["sub"].(string)
	accountID, err := uuid.Parse(sub)
	if err != nil {
		return service.SessionToken{}, errors.Wrap(err, "invalid account id in session token")
	}

	salt, _ := claims["salt"].(string)
	if salt == "" {
		return service.SessionToken{}, errors.New("missing salt in session token")
	}

	return service.SessionToken{AccountID: accountID, Salt: salt}, nil
}
