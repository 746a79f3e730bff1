package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "tienda/internal/errors"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.Issue("user-1", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestTokenManager_Parse_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Hour).Issue("user-1", false)
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).Parse(token)
	assert.Error(t, err)

	_, ok := apperrors.IsUnauthorizedError(err)
	assert.True(t, ok)
}

func TestTokenManager_Parse_Expired(t *testing.T) {
	token, err := NewTokenManager("test-secret", -time.Minute).Issue("user-1", false)
	require.NoError(t, err)

	_, err = NewTokenManager("test-secret", -time.Minute).Parse(token)
	assert.Error(t, err)
}

func newAuthTestHandler(t *testing.T, tm *TokenManager) http.Handler {
	t.Helper()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return Middleware(tm, zap.NewNop())(next)
}

func TestMiddleware_MissingToken(t *testing.T) {
	handler := newAuthTestHandler(t, NewTokenManager("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"the user is not authorized"}`, rec.Body.String())
}

func TestMiddleware_InvalidToken(t *testing.T) {
	handler := newAuthTestHandler(t, NewTokenManager("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_ValidToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	handler := newAuthTestHandler(t, tm)

	token, err := tm.Issue("user-1", false)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddleware_NonAdminWriteRejected(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	handler := newAuthTestHandler(t, tm)

	token, err := tm.Issue("user-1", false)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/api/orders/abc", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_PublicPaths(t *testing.T) {
	handler := newAuthTestHandler(t, NewTokenManager("test-secret", time.Hour))

	public := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/products"},
		{http.MethodGet, "/api/products/abc"},
		{http.MethodGet, "/api/categories"},
		{http.MethodPost, "/api/users/login"},
		{http.MethodPost, "/api/users/register"},
	}

	for _, tc := range public {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "%s %s should be public", tc.method, tc.path)
	}
}

func TestMiddleware_ProductWriteStillGated(t *testing.T) {
	handler := newAuthTestHandler(t, NewTokenManager("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
