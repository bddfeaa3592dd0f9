package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/connecta/agency-system/internal/core/domain"
)

const (
	defaultTokenTTL    = 120 * time.Minute
	defaultRememberTTL = 30 * 24 * time.Hour
)

// TokenIssuer mints and verifies signed session tokens. The signing
// secret is process-wide configuration loaded once at startup; runtime
// rotation is out of scope.
type TokenIssuer struct {
	secret      []byte
	ttl         time.Duration
	rememberTTL time.Duration
}

// NewTokenIssuer returns a TokenIssuer with the given secret and
// lifetimes. Non-positive lifetimes fall back to the defaults.
func NewTokenIssuer(secret string, ttl, rememberTTL time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	if rememberTTL <= 0 {
		rememberTTL = defaultRememberTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, rememberTTL: rememberTTL}
}

// Issue mints an HS256 token whose subject is the user ID. The returned
// lifetime is the extended one when remember is set.
func (t *TokenIssuer) Issue(subjectID string, remember bool) (string, time.Duration, error) {
	lifetime := t.ttl
	if remember {
		lifetime = t.rememberTTL
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", 0, err
	}
	return signed, lifetime, nil
}

// Verify checks the token's signature and expiry and returns its subject
// plus the embedded expiry. It fails closed: every parse, signature, or
// claim problem collapses into domain.ErrUnauthenticated.
func (t *TokenIssuer) Verify(token string) (string, time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tk *jwt.Token) (interface{}, error) {
		if tk.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", time.Time{}, domain.ErrUnauthenticated
	}
	if claims.Subject == "" || claims.ExpiresAt == nil {
		return "", time.Time{}, domain.ErrUnauthenticated
	}
	return claims.Subject, claims.ExpiresAt.Time, nil
}
