package auth

import "context"

// AuthService proxies authentication to the payroll API. The gateway
// never stores credentials; it forwards the login form and hands the
// backend-issued token back to the caller.
type AuthService interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Me returns the profile of the token's owner.
	Me(ctx context.Context, token string) (UserResponse, error)
}
