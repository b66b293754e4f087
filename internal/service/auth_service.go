package service

import (
	"context"

	"bistro/internal/auth"
)

// AuthService issues bearer tokens. The caller asserts its own identity.
type AuthService interface {
	IssueToken(ctx context.Context, identity map[string]interface{}) (string, error)
}

type authService struct {
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(jwtService *auth.JWTService) AuthService {
	return &authService{jwtService: jwtService}
}

func (s *authService) IssueToken(_ context.Context, identity map[string]interface{}) (string, error) {
	return s.jwtService.GenerateToken(identity)
}
