package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/perfumehub/catalog-system/internal/core/domain"
)

// ErrMissingSecret is returned by NewTokenService when no signing secret is
// configured. It is fatal at startup, never a per-request failure.
var ErrMissingSecret = errors.New("token service: signing secret is required")

const defaultTokenTTL = 24 * time.Hour

// TokenService issues and verifies signed, time-limited bearer tokens.
// Verification is a pure function of the token and the secret; callers are
// responsible for re-checking that the member still exists.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Issue produces an HS256 token embedding memberID with an expiry fixed at
// issuance time.
func (s *TokenService) Issue(memberID string) (string, error) {
	claims := jwt.MapClaims{
		"id":  memberID,
		"exp": time.Now().Add(s.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify returns the member id embedded in token. It fails with
// domain.ErrInvalidToken when the signature is invalid, the payload is
// malformed, or the expiry has elapsed.
func (s *TokenService) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidToken
	}

	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return "", domain.ErrInvalidToken
	}
	return id, nil
}
