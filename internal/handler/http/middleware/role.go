package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paielab/paie-gateway/internal/domain/auth"
	"github.com/paielab/paie-gateway/internal/handler/http/response"
)

// RequireRH restricts a route to HR users. Employees keep access to
// their own read-only views, everything that edits pay data is RH-only.
func RequireRH(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrForbidden)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != auth.RoleRH {
			response.HandleError(w, auth.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
