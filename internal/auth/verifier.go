package auth

import (
	"net/http"
	"strings"

	"github.com/Ritik8097/EmployeeTask/internal/apperr"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	tokenBlacklistPrefix = "auth:token:blacklist:"
	authCookieName       = "access_token"
)

var errUnauthorized = apperr.Unauthorized("authorization required")

// Verifier resolves the bearer token on a request into an Identity. Tokens
// revoked through logout are rejected via the redis blacklist.
type Verifier struct {
	secret []byte
	rdb    *redis.Client
}

func NewVerifier(secret []byte, rdb *redis.Client) *Verifier {
	return &Verifier{secret: secret, rdb: rdb}
}

func (v *Verifier) VerifyRequest(r *http.Request) (Identity, error) {
	claims, err := v.ClaimsFromRequest(r)
	if err != nil {
		return Identity{}, err
	}
	return Identity{UserID: claims.UserID, Role: claims.Role}, nil
}

func (v *Verifier) ClaimsFromRequest(r *http.Request) (Claims, error) {
	tokenString, err := TokenFromRequest(r)
	if err != nil {
		return Claims{}, err
	}

	claims, err := ParseToken(tokenString, v.secret)
	if err != nil {
		return Claims{}, errUnauthorized
	}

	if claims.UserID == uuid.Nil || claims.ID == "" {
		return Claims{}, errUnauthorized
	}

	if v.rdb != nil {
		key := tokenBlacklistPrefix + claims.ID
		exists, err := v.rdb.Exists(r.Context(), key).Result()
		if err != nil {
			return Claims{}, apperr.Internal(err)
		}
		if exists == 1 {
			return Claims{}, errUnauthorized
		}
	}

	return claims, nil
}

// TokenFromRequest extracts the raw token from the Authorization header,
// falling back to the auth cookie.
func TokenFromRequest(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if token, err := extractBearerToken(authHeader); err == nil {
		return token, nil
	}

	if cookie, err := r.Cookie(authCookieName); err == nil {
		if token := strings.TrimSpace(cookie.Value); token != "" {
			return token, nil
		}
	}

	return "", errUnauthorized
}

func extractBearerToken(header string) (string, error) {
	if header == "" {
		return "", errUnauthorized
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errUnauthorized
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errUnauthorized
	}

	return token, nil
}
