package services

import (
	"context"
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// IdentityResolver turns a bearer credential into the caller identity.
type IdentityResolver interface {
	// ResolveBearer returns apperrors.ErrUnauthorized when the token is missing, malformed or expired.
	ResolveBearer(ctx context.Context, token string) (*domain.Identity, error)
}

// TokenIssuer issues bearer tokens. It is used by operator tooling and tests.
type TokenIssuer interface {
	IssueToken(identity domain.Identity, ttl time.Duration) (string, error)
}
