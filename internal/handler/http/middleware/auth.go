package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paielab/paie-gateway/internal/domain/auth"
	"github.com/paielab/paie-gateway/internal/handler/http/response"
)

// AuthRequired rejects requests whose bearer token failed verification.
// The token is the one issued by the payroll API; the gateway verifies
// it with the shared HS256 secret and forwards it on outbound calls.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrSessionExpired)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// BearerToken returns the raw token from the Authorization header, for
// forwarding to the payroll API.
func BearerToken(r *http.Request) string {
	return jwtauth.TokenFromHeader(r)
}
