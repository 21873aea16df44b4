package service

import (
	"context"

	"github.com/puntoventa/puntoventa/internal/api/dto"
	"github.com/puntoventa/puntoventa/internal/auth"
)

// AuthService handles signup and login against the auth provider
type AuthService interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	ServiceParams
	provider auth.Provider
}

func NewAuthService(params ServiceParams, provider auth.Provider) AuthService {
	return &authService{ServiceParams: params, provider: provider}
}

func (s *authService) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.provider.SignUp(ctx, req.ToAuthRequest())
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("user signed up", "user_id", resp.UserID)

	return &dto.AuthResponse{
		Token:  resp.AuthToken,
		UserID: resp.UserID,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.provider.Login(ctx, req.ToAuthRequest())
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:  resp.AuthToken,
		UserID: resp.UserID,
	}, nil
}
