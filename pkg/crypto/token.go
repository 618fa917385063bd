package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenInvalid = errors.New("invalid session token")

// SessionClaims are the claims encoded in a session token: the subject user
// id plus the standard issued-at and expiry timestamps.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
}

// SessionCodec issues and verifies signed, time-limited session tokens.
// The signing key is loaded once at startup and never rotated for the
// process lifetime; verification is purely cryptographic and touches no
// server-side state.
type SessionCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionCodec(secret []byte, ttl time.Duration) *SessionCodec {
	return &SessionCodec{
		secret: secret,
		ttl:    ttl,
	}
}

// TTL returns the fixed token lifetime. The session cookie expiry is kept
// consistent with it.
func (c *SessionCodec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token for the given user id, valid from now until now+TTL.
func (c *SessionCodec) Issue(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		UserID: userID,
	})

	return token.SignedString(c.secret)
}

// Verify checks the token signature and expiry and returns the encoded user
// id. Malformed tokens, bad signatures and expired tokens all collapse into
// the single ErrTokenInvalid outcome.
func (c *SessionCodec) Verify(tokenString string) (string, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", ErrTokenInvalid
	}

	if !token.Valid || claims.UserID == "" {
		return "", ErrTokenInvalid
	}

	return claims.UserID, nil
}
