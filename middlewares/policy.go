package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rahatfaruk/pha12-meals-track-server/models"
)

// Guard is one link of a route policy. Routes declare their guards in
// a table instead of re-implementing checks per handler, so the same
// contract cannot drift between near-duplicate routes.
type Guard func(http.Handler) http.Handler

// Chain wraps h so guards run left to right.
func Chain(h http.Handler, guards ...Guard) http.Handler {
	for i := len(guards) - 1; i >= 0; i-- {
		h = guards[i](h)
	}
	return h
}

// UserFinder is the slice of the store the admin gate needs.
type UserFinder interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AdminOnly confirms elevated privilege against the users collection.
// Must run after Authentication. A missing user document is non-admin.
func AdminOnly(users UserFinder) Guard {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := EmailFromContext(r)
			user, err := users.FindUserByEmail(r.Context(), email)
			if err != nil || user == nil || user.Rank != models.RankAdmin {
				writeMessage(w, http.StatusForbidden, "Forbidden access!!")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// OwnerSource extracts the resource-owner email a request claims to
// act for.
type OwnerSource func(r *http.Request) string

func OwnerFromQuery(param string) OwnerSource {
	return func(r *http.Request) string {
		return r.URL.Query().Get(param)
	}
}

func OwnerFromPath(param string) OwnerSource {
	return func(r *http.Request) string {
		return mux.Vars(r)[param]
	}
}

// RequireOwner rejects the request before any database work when the
// verified identity differs from the owner email the request names.
func RequireOwner(source OwnerSource) Guard {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			owner := source(r)
			if owner == "" || owner != EmailFromContext(r) {
				writeMessage(w, http.StatusForbidden, "forbidden access")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Recover converts a handler panic into a logged 500 instead of a hung
// request.
func Recover(logger *slog.Logger) Guard {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("handler panic", "path", r.URL.Path, "panic", rec)
					writeMessage(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
