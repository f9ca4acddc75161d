package auth

import (
	"context"

	"github.com/paielab/paie-gateway/internal/domain/auth"
	"github.com/paielab/paie-gateway/internal/pkg/paieapi"
)

type authServiceImpl struct {
	client *paieapi.Client
}

func NewAuthService(client *paieapi.Client) auth.AuthService {
	return &authServiceImpl{client: client}
}

// Login implements auth.AuthService.
func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}
	return s.client.Anonymous().Login(ctx, req.Email, req.Password)
}

// Me implements auth.AuthService.
func (s *authServiceImpl) Me(ctx context.Context, token string) (auth.UserResponse, error) {
	return s.client.WithToken(token).Me(ctx)
}
