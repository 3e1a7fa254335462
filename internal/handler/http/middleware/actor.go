package middleware

import (
	"net/http"

	"github.com/constructor-app/constructor-backend-go/internal/domain/user"
	"github.com/constructor-app/constructor-backend-go/internal/handler/http/response"
	"github.com/constructor-app/constructor-backend-go/internal/pkg/actor"
)

// ActingUser resolves the X-Acting-User header against the roster and stores
// the full user on the request context. Every /api/v1 route runs behind it.
func ActingUser(userRepo user.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := r.Header.Get("X-Acting-User")
			if userID == "" {
				response.HandleError(w, user.ErrActingUserRequired)
				return
			}

			u, err := userRepo.GetByID(r.Context(), userID)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(actor.WithUser(r.Context(), u)))
		})
	}
}

// PrivilegedOnly rejects the request unless the acting user holds one of the
// management roles. It must run after ActingUser.
func PrivilegedOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actingUser, err := actor.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !actingUser.IsPrivileged() {
			response.HandleError(w, user.ErrPrivilegedRoleRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
