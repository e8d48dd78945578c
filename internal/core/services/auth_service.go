package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims are the JWT claims of a bearer token. The subject is the numeric user id;
// tenant_id is optional and defaults to the user id.
type IdentityClaims struct {
	TenantID int64 `json:"tenant_id,omitempty"`
	jwt.RegisteredClaims
}

// JWTIdentityService resolves and issues HS256 bearer tokens.
type JWTIdentityService struct {
	secret []byte
	issuer string
}

// NewJWTIdentityService creates an identity resolver for tokens signed with secret.
// A non-empty issuer is required to match the token's iss claim.
func NewJWTIdentityService(secret, issuer string) *JWTIdentityService {
	return &JWTIdentityService{secret: []byte(secret), issuer: issuer}
}

var (
	_ portssvc.IdentityResolver = (*JWTIdentityService)(nil)
	_ portssvc.TokenIssuer      = (*JWTIdentityService)(nil)
)

// ResolveBearer validates the token and extracts the caller identity.
func (s *JWTIdentityService) ResolveBearer(ctx context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", apperrors.ErrUnauthorized)
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &IdentityClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%w: token has expired", apperrors.ErrUnauthorized)
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return nil, fmt.Errorf("%w: token not valid yet", apperrors.ErrUnauthorized)
		default:
			return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
		}
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("%w: invalid token", apperrors.ErrUnauthorized)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return nil, fmt.Errorf("%w: subject must be a positive user id", apperrors.ErrUnauthorized)
	}
	tenantID := claims.TenantID
	if tenantID == 0 {
		tenantID = userID
	}
	if tenantID < 0 {
		return nil, fmt.Errorf("%w: invalid tenant", apperrors.ErrUnauthorized)
	}
	return &domain.Identity{UserID: userID, TenantID: tenantID}, nil
}

// IssueToken signs a token for identity valid for ttl.
func (s *JWTIdentityService) IssueToken(identity domain.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatInt(identity.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if identity.TenantID != identity.UserID {
		claims.TenantID = identity.TenantID
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
