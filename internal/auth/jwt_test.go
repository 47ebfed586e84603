package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	a := New("test-secret", time.Hour)

	token, err := a.GenerateToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	userID, err := a.ValidateToken(r)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestValidateTokenMissingHeader(t *testing.T) {
	a := New("test-secret", time.Hour)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := a.ValidateToken(r)
	assert.Error(t, err)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := New("secret-a", time.Hour)
	verifier := New("secret-b", time.Hour)

	token, err := issuer.GenerateToken("user-123")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	_, err = verifier.ValidateToken(r)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	a := New("test-secret", -time.Minute)

	token, err := a.GenerateToken("user-123")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	_, err = a.ValidateToken(r)
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	a := New("test-secret", time.Hour)

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = UserID(r.Context())
	})

	token, err := a.GenerateToken("user-42")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	a.Middleware(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-42", seen)
}

func TestMiddlewareRejectsAnonymous(t *testing.T) {
	a := New("test-secret", time.Hour)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	a.Middleware(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestUserIDWithoutMiddleware(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, UserID(r.Context()))
}
