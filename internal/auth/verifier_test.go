package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ritik8097/EmployeeTask/internal/apperr"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, user Users) (string, Claims) {
	t.Helper()
	claims := BuildJWTClaims(user, 3600)
	token, err := SignToken(claims, testSecret)
	require.NoError(t, err)
	return token, claims
}

func TestVerifyRequestBearerHeader(t *testing.T) {
	user := Users{ID: uuid.New(), Role: RoleAdmin}
	token, _ := signedToken(t, user)

	v := NewVerifier(testSecret, nil)
	r := httptest.NewRequest("GET", "/tasks", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	identity, err := v.VerifyRequest(r)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, RoleAdmin, identity.Role)
}

func TestVerifyRequestCookieFallback(t *testing.T) {
	user := Users{ID: uuid.New(), Role: RoleEmployee}
	token, _ := signedToken(t, user)

	v := NewVerifier(testSecret, nil)
	r := httptest.NewRequest("GET", "/tasks", nil)
	r.AddCookie(&http.Cookie{Name: authCookieName, Value: token})

	identity, err := v.VerifyRequest(r)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
}

func TestVerifyRequestMissingOrGarbageToken(t *testing.T) {
	v := NewVerifier(testSecret, nil)

	r := httptest.NewRequest("GET", "/tasks", nil)
	_, err := v.VerifyRequest(r)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	r.Header.Set("Authorization", "Bearer not-a-token")
	_, err = v.VerifyRequest(r)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	_, err = v.VerifyRequest(r)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestVerifyRequestBlacklistedToken(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	user := Users{ID: uuid.New(), Role: RoleEmployee}
	token, claims := signedToken(t, user)

	v := NewVerifier(testSecret, rdb)
	r := httptest.NewRequest("GET", "/tasks", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	_, err := v.VerifyRequest(r)
	require.NoError(t, err, "token valid before revocation")

	require.NoError(t, rdb.Set(r.Context(), tokenBlacklistPrefix+claims.ID, "revoked", time.Hour).Err())

	_, err = v.VerifyRequest(r)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}
