package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"paradas/internal/models"
)

type ctxKey string

const userKey ctxKey = "user"

// SessionAuth — Authorization: Bearer <token> → пользователь в контексте.
func SessionAuth(svc *Service) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const p = "Bearer "
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, p) {
				models.WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			user, err := svc.Authenticate(r.Context(), strings.TrimPrefix(h, p))
			if err != nil {
				models.WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin пускает только admin/superadmin.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u := UserFrom(r)
		if u == nil {
			models.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if !u.IsAdmin() {
			models.WriteError(w, http.StatusForbidden, "forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFrom достаёт аутентифицированного пользователя из запроса.
func UserFrom(r *http.Request) *models.User {
	if u, ok := r.Context().Value(userKey).(*models.User); ok {
		return u
	}
	return nil
}
