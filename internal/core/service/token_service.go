package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/maiunguwa377/caseflow/internal/core/domain"
)

// ErrNoSecret is returned when token operations are attempted without a
// configured signing secret.
var ErrNoSecret = errors.New("token signing secret not configured")

// TokenService signs and verifies session tokens with a process-wide
// HS256 secret. Tokens carry only the user id and role; no expiry is
// set, so a token stays valid until the secret rotates.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue serializes claims into a signed token.
func (s *TokenService) Issue(claims domain.Claims) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrNoSecret
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   claims.UserID,
		"role": claims.Role,
	})
	return t.SignedString(s.secret)
}

// Verify checks the signature and reconstructs the claims. Every
// failure mode — bad signature, wrong algorithm, malformed payload —
// collapses into domain.ErrInvalidToken so callers treat them all as
// unauthenticated.
func (s *TokenService) Verify(token string) (domain.Claims, error) {
	if len(s.secret) == 0 {
		return domain.Claims{}, ErrNoSecret
	}

	mc := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, mc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return domain.Claims{}, domain.ErrInvalidToken
	}

	// JSON numbers decode as float64.
	id, ok := mc["id"].(float64)
	role, okRole := mc["role"].(string)
	if !ok || !okRole || role == "" {
		return domain.Claims{}, domain.ErrInvalidToken
	}

	return domain.Claims{UserID: int64(id), Role: role}, nil
}
