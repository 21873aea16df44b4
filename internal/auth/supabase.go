package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
	supabase "github.com/nedpals/supabase-go"
	"github.com/puntoventa/puntoventa/internal/config"
	ierr "github.com/puntoventa/puntoventa/internal/errors"
)

type supabaseAuth struct {
	authConfig config.AuthConfig
	client     *supabase.Client
}

// NewSupabaseAuth creates the Supabase-backed auth provider
func NewSupabaseAuth(cfg *config.Configuration) (Provider, error) {
	client := supabase.CreateClient(cfg.Auth.Supabase.BaseURL, cfg.Auth.Supabase.ServiceKey)
	if client == nil {
		return nil, ierr.NewError("failed to create supabase client").
			WithHint("Check the Supabase base URL and service key").
			Mark(ierr.ErrSystem)
	}

	return &supabaseAuth{
		authConfig: cfg.Auth,
		client:     client,
	}, nil
}

func (s *supabaseAuth) SignUp(ctx context.Context, req AuthRequest) (*AuthResponse, error) {
	_, err := s.client.Auth.SignUp(ctx, supabase.UserCredentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Sign up failed").
			Mark(ierr.ErrInvalidOperation)
	}

	return s.Login(ctx, req)
}

func (s *supabaseAuth) Login(ctx context.Context, req AuthRequest) (*AuthResponse, error) {
	user, err := s.client.Auth.SignIn(ctx, supabase.UserCredentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid email or password").
			Mark(ierr.ErrPermissionDenied)
	}

	return &AuthResponse{
		AuthToken: user.AccessToken,
		UserID:    user.User.ID,
	}, nil
}

// ValidateToken verifies a Supabase-issued HS256 access token locally and
// extracts the user identity from it.
func (s *supabaseAuth) ValidateToken(ctx context.Context, token string) (*Claims, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ierr.NewError("unexpected signing method").
				Mark(ierr.ErrPermissionDenied)
		}
		return []byte(s.authConfig.Secret), nil
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid token").
			Mark(ierr.ErrPermissionDenied)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, ierr.NewError("invalid token claims").
			WithHint("Invalid token").
			Mark(ierr.ErrPermissionDenied)
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return nil, ierr.NewError("token missing user id").
			WithHint("Invalid token").
			Mark(ierr.ErrPermissionDenied)
	}

	email, _ := claims["email"].(string)

	return &Claims{
		UserID: userID,
		Email:  email,
	}, nil
}
