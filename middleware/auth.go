package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Samuel-pydev/Spill-Zone-bck/apperrors"
	"github.com/Samuel-pydev/Spill-Zone-bck/auth"
	"github.com/Samuel-pydev/Spill-Zone-bck/models"
	"github.com/Samuel-pydev/Spill-Zone-bck/repositories"
)

type contextKey int

const userKey contextKey = iota

const bearerPrefix = "Bearer "

// Authenticate checks the bearer token on every request and resolves it to a
// live user, stored in the request context. A token whose subject no longer
// exists is rejected the same as an invalid one.
func Authenticate(tokens *auth.TokenService, users repositories.UserRepository) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				unauthorized(w, "Not authenticated")
				return
			}

			username, err := tokens.Validate(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				unauthorized(w, "Invalid token")
				return
			}

			user, err := users.FindByUsername(username)
			if errors.Is(err, apperrors.ErrNotFound) {
				unauthorized(w, "User not found")
				return
			}
			if err != nil {
				http.Error(w, `{"detail": "Database error"}`, http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFrom returns the authenticated user injected by Authenticate.
func UserFrom(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
