package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tasknest/tasknest-go/internal/crypto"
)

type contextKey string

const claimsKey contextKey = "claims"

// BearerAuth returns middleware that validates a Bearer token from the
// Authorization header. A missing header is reported as 403, anything
// malformed, tampered or expired as 401. The verified claims are attached
// to the request context once; handlers read them via ClaimsFromContext
// instead of decoding the token again.
func BearerAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONMessage(w, http.StatusForbidden, "Token not provided")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONMessage(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONMessage(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext extracts the verified token claims from the request
// context.
func ClaimsFromContext(ctx context.Context) (*crypto.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*crypto.Claims)
	return claims, ok
}

func writeJSONMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
