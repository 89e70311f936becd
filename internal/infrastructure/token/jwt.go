package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hlaeja-ltd/account-registry/internal/core/ports"
)

const defaultTTL = 24 * time.Hour

// JWTSigner implements ports.TokenSigner with an HS256-signed JWT. An exp
// claim derived from the configured TTL is appended to whatever claims the
// caller supplies.
type JWTSigner struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTSigner(secret string, ttl time.Duration) *JWTSigner {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &JWTSigner{secret: []byte(secret), ttl: ttl}
}

func (s *JWTSigner) Sign(claims ...ports.Claim) (string, error) {
	mc := jwt.MapClaims{
		"exp": time.Now().Add(s.ttl).Unix(),
	}
	for _, c := range claims {
		mc[c.Key] = c.Value
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return t.SignedString(s.secret)
}
