package middlewares

import (
	"context"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/exceptions"
	"doctorsportal-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"strings"
)

// Authenticate verifies the bearer token and stores the verified email claim
// in the request context for the handlers behind it.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		email, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_USER_EMAIL_KEY, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates a route on the admin role of the authenticated user. The
// role is looked up per request so a revoked grant takes effect immediately.
func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := r.Context().Value(constvars.CONTEXT_USER_EMAIL_KEY).(string)
		if !ok || email == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		user, err := m.UserRepository.FindByEmail(r.Context(), email)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if user == nil || !user.IsAdmin() {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAdmin(fmt.Errorf("user %s is not an admin", email)))
			return
		}

		next.ServeHTTP(w, r)
	})
}
