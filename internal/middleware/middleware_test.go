package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) ResolveBearer(ctx context.Context, token string) (*domain.Identity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/whoami", func(c *gin.Context) {
		identity, ok := GetIdentityFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		tenantID, _ := GetTenantIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user": identity.UserID, "tenant": tenantID})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	resolver := new(mockResolver)
	resolver.On("ResolveBearer", mock.Anything, "good").Return(&domain.Identity{UserID: 3, TenantID: 9}, nil)
	resolver.On("ResolveBearer", mock.Anything, "bad").Return(nil, apperrors.ErrUnauthorized)
	r := newTestRouter(StructuredLoggingMiddleware(nil), AuthMiddleware(resolver))

	testCases := []struct {
		name   string
		header string
		code   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"rejected token", "Bearer bad", http.StatusUnauthorized},
		{"valid token", "bearer good", http.StatusOK},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.code, w.Code)
			if tc.code == http.StatusOK {
				assert.JSONEq(t, `{"user":3,"tenant":9}`, w.Body.String())
			}
		})
	}
}

func TestStructuredLoggingMiddleware_RequestID(t *testing.T) {
	r := newTestRouter(StructuredLoggingMiddleware(nil))

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}

func TestRateLimit(t *testing.T) {
	limiterInstance, err := NewIPRateLimiter("2-M")
	require.NoError(t, err)
	r := gin.New()
	r.Use(RateLimit(limiterInstance))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	_, err = NewIPRateLimiter("lots")
	assert.Error(t, err)
}
