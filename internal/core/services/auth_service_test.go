package services

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTIdentityService_RoundTrip(t *testing.T) {
	svc := NewJWTIdentityService("test-secret-key-that-is-long-enough", "ledger-test")

	token, err := svc.IssueToken(domain.Identity{UserID: 7, TenantID: 7}, time.Minute)
	require.NoError(t, err)
	identity, err := svc.ResolveBearer(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, domain.Identity{UserID: 7, TenantID: 7}, *identity)

	token, err = svc.IssueToken(domain.Identity{UserID: 7, TenantID: 42}, time.Minute)
	require.NoError(t, err)
	identity, err = svc.ResolveBearer(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), identity.TenantID)
}

func TestJWTIdentityService_Rejects(t *testing.T) {
	svc := NewJWTIdentityService("test-secret-key-that-is-long-enough", "ledger-test")
	sign := func(secret string, claims jwt.Claims, method jwt.SigningMethod) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return s
	}
	valid := func(sub, iss string) jwt.RegisteredClaims {
		return jwt.RegisteredClaims{Subject: sub, Issuer: iss, ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	}

	expired, err := svc.IssueToken(domain.Identity{UserID: 1, TenantID: 1}, -time.Minute)
	require.NoError(t, err)

	testCases := map[string]string{
		"empty":        "",
		"garbage":      "not-a-jwt",
		"expired":      expired,
		"wrong secret": sign("another-secret", valid("1", "ledger-test"), jwt.SigningMethodHS256),
		"wrong issuer": sign("test-secret-key-that-is-long-enough", valid("1", "elsewhere"), jwt.SigningMethodHS256),
		"bad subject":  sign("test-secret-key-that-is-long-enough", valid("alice", "ledger-test"), jwt.SigningMethodHS256),
		"wrong alg":    sign("test-secret-key-that-is-long-enough", valid("1", "ledger-test"), jwt.SigningMethodHS512),
	}
	for name, token := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ResolveBearer(context.Background(), token)
			assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		})
	}
}
