package paieapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/paielab/paie-gateway/internal/domain/auth"
)

// Login exchanges credentials for a bearer token. The endpoint speaks
// the OAuth2 password form: the email goes into the username field.
func (s *Session) Login(ctx context.Context, email, password string) (auth.TokenResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var resp auth.TokenResponse
	if err := s.postForm(ctx, "/api/auth/login", form, &resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}
	return resp, nil
}

// Me returns the profile of the session's token owner.
func (s *Session) Me(ctx context.Context) (auth.UserResponse, error) {
	var resp auth.UserResponse
	if err := s.get(ctx, "/api/auth/me", nil, &resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return auth.UserResponse{}, auth.ErrSessionExpired
		}
		return auth.UserResponse{}, err
	}
	return resp, nil
}
