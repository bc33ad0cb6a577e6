package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	helper "github.com/rahatfaruk/pha12-meals-track-server/helper"
)

type contextKey string

const emailKey contextKey = "email"

// Authentication extracts the bearer token, verifies it and stores the
// decoded email claim in the request context. Missing or invalid
// tokens end the request with 401; there are no retries.
func Authentication(tokens *helper.TokenService) Guard {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeMessage(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			// token format should be "Bearer <token>"
			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				writeMessage(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := tokens.Validate(tokenParts[1])
			if err != nil {
				writeMessage(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), emailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithEmail stores a verified email the way Authentication does.
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

// EmailFromContext returns the verified email stored by Authentication,
// or "" when the request never passed through it.
func EmailFromContext(r *http.Request) string {
	email, _ := r.Context().Value(emailKey).(string)
	return email
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
