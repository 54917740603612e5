// Package auth provides JWT-based authentication handlers and middleware.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/respond"
)

type ctxKey string

const ctxUserID ctxKey = "user_id"

// jwtSecretEnv names the environment variable holding the HS256 signing key.
// The security config can point it at a different variable via SetSecretEnv.
var jwtSecretEnv = "JWT_SECRET"

// SetSecretEnv repoints token signing and verification at a different
// environment variable. Call once at startup, before handlers are wired.
func SetSecretEnv(name string) {
	if name != "" {
		jwtSecretEnv = name
	}
}

func signingSecret() []byte {
	return []byte(os.Getenv(jwtSecretEnv))
}

// UserIDFromContext returns the authenticated user's ID, or 0 when the
// request carried no valid token.
func UserIDFromContext(ctx context.Context) int64 {
	if id, ok := ctx.Value(ctxUserID).(int64); ok {
		return id
	}
	return 0
}

// WithUserID puts an authenticated user ID on the context. Exposed for
// handler tests.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, ctxUserID, id)
}

// Authz is an authorization middleware that requires a valid JWT for every
// request it wraps. The token subject carries the user ID, which is added
// to the request context for ownership checks downstream.
func Authz(next http.Handler) http.Handler {
	secret := signingSecret()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := validateJWT(r.Header.Get("Authorization"), secret)
		if err != nil {
			respond.SafeError(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: invalid token: %w", err))
			return
		}
		ctx := WithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func validateJWT(authz string, secret []byte) (int64, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return 0, errors.New("missing bearer token")
	}
	tokenString := strings.TrimPrefix(authz, prefix)
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !tok.Valid {
		return 0, errors.New("invalid token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return 0, errors.New("token expired")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, errors.New("missing subject")
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || userID <= 0 {
		return 0, errors.New("invalid subject")
	}
	return userID, nil
}
