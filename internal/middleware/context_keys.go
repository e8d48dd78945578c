package middleware

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// identityKey is the key used to store the authenticated identity in the request context.
const identityKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying the caller identity.
func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromCtx retrieves the caller identity from a standard context.
func IdentityFromCtx(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	return identity, ok
}

// GetIdentityFromContext retrieves the authenticated identity from the Gin request.
// It returns the identity and a boolean indicating if it was found.
func GetIdentityFromContext(c *gin.Context) (domain.Identity, bool) {
	return IdentityFromCtx(c.Request.Context())
}

// GetTenantIDFromContext retrieves the tenant the request acts on.
func GetTenantIDFromContext(c *gin.Context) (int64, bool) {
	identity, ok := GetIdentityFromContext(c)
	if !ok {
		return 0, false
	}
	return identity.TenantID, true
}
