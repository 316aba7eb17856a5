package ports

import "github.com/maiunguwa377/caseflow/internal/core/domain"

// TokenService issues and verifies signed session tokens.
//
// Verify must return domain.ErrInvalidToken for any bad token —
// signature mismatch, malformed structure, or decoding failure —
// so callers treat every failure uniformly as unauthenticated.
type TokenService interface {
	Issue(claims domain.Claims) (string, error)
	Verify(token string) (domain.Claims, error)
}
