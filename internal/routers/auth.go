package routers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Ritik8097/EmployeeTask/internal/apperr"
	"github.com/Ritik8097/EmployeeTask/internal/auth"
	"github.com/Ritik8097/EmployeeTask/internal/dto"
	"github.com/redis/go-redis/v9"
)

const (
	loginAttemptPrefix   = "auth:login:attempts:"
	tokenBlacklistPrefix = "auth:token:blacklist:"
	maxLoginAttempts     = 5
	loginAttemptWindow   = 10 * time.Minute
)

type AuthRoutes struct {
	service   auth.UserService
	verifier  *auth.Verifier
	jwtSecret []byte
	rdb       *redis.Client
}

func NewAuthRoutes(service auth.UserService, verifier *auth.Verifier, jwtSecret []byte, rdb *redis.Client) *AuthRoutes {
	return &AuthRoutes{
		service:   service,
		verifier:  verifier,
		jwtSecret: jwtSecret,
		rdb:       rdb,
	}
}

func (a *AuthRoutes) RegisterHandlers(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("POST /auth/register", a.handleRegister)
	mux.HandleFunc("POST /auth/login", a.handleLogin)
	mux.HandleFunc("DELETE /auth/logout", a.handleLogout)
	mux.HandleFunc("GET /auth/me", a.handleProfile)
}

func (a *AuthRoutes) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondValidation(w, err.Error())
		return
	}

	user, claims, err := a.service.Register(r.Context(), auth.RegisterInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Department: req.Department,
		Role:       auth.Role(req.Role),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	resp, err := a.session(w, user, claims)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (a *AuthRoutes) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondValidation(w, err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	attemptKey := loginAttemptPrefix + email + ":" + clientIP(r)
	if a.rdb != nil {
		if cnt, err := a.rdb.Get(r.Context(), attemptKey).Int64(); err == nil && cnt >= maxLoginAttempts {
			writeError(w, http.StatusTooManyRequests, apperr.KindUnauthorized, "too many attempts")
			return
		}
	}

	user, claims, err := a.service.Login(r.Context(), email, req.Password)
	if err != nil {
		if a.rdb != nil && apperr.KindOf(err) == apperr.KindUnauthorized {
			val, _ := a.rdb.Incr(r.Context(), attemptKey).Result()
			if val == 1 {
				_ = a.rdb.Expire(r.Context(), attemptKey, loginAttemptWindow).Err()
			}
		}
		respondError(w, err)
		return
	}

	if a.rdb != nil {
		_ = a.rdb.Del(r.Context(), attemptKey).Err()
	}

	resp, err := a.session(w, user, claims)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *AuthRoutes) handleLogout(w http.ResponseWriter, r *http.Request) {
	claims, err := a.verifier.ClaimsFromRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if claims.ID == "" || claims.ExpiresAt == nil {
		respondValidation(w, "invalid token")
		return
	}

	// Blacklist the token id for its remaining lifetime; an already
	// expired token has nothing to revoke.
	if ttl := time.Until(claims.ExpiresAt.Time); ttl > 0 && a.rdb != nil {
		key := tokenBlacklistPrefix + claims.ID
		if err := a.rdb.Set(r.Context(), key, "revoked", ttl).Err(); err != nil {
			respondError(w, apperr.Internal(err))
			return
		}
	}

	clearAuthCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (a *AuthRoutes) handleProfile(w http.ResponseWriter, r *http.Request) {
	identity, err := a.verifier.VerifyRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}

	user, err := a.service.Profile(r.Context(), identity.UserID)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ProfileResponse{
		ID:         user.ID.String(),
		Name:       user.Name,
		Email:      user.Email,
		Role:       string(user.Role),
		Department: user.Department,
		CreatedAt:  user.Created_at.Format(time.RFC3339),
	})
}

func (a *AuthRoutes) session(w http.ResponseWriter, user auth.Users, claims auth.Claims) (dto.SessionResponse, error) {
	token, err := auth.SignToken(claims, a.jwtSecret)
	if err != nil {
		return dto.SessionResponse{}, apperr.Internal(err)
	}

	expiresIn := int64(0)
	if claims.ExpiresAt != nil {
		expiresIn = claims.ExpiresAt.Time.Unix() - time.Now().Unix()
	}
	setAuthCookie(w, token, expiresIn)

	return dto.SessionResponse{
		ID:         user.ID.String(),
		Name:       user.Name,
		Email:      user.Email,
		Role:       string(user.Role),
		Department: user.Department,
		Token:      token,
		ExpiresIn:  expiresIn,
	}, nil
}

func setAuthCookie(w http.ResponseWriter, token string, maxAge int64) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clientIP resolves the real client address behind proxies.
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		ips := strings.Split(ip, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return strings.TrimSpace(ip)
	}
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
