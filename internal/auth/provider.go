package auth

import "context"

// Claims is the identity extracted from a validated access token. The
// user id doubles as the tenant key for every store query.
type Claims struct {
	UserID string
	Email  string
}

// AuthRequest is the credential pair for signup and login
type AuthRequest struct {
	Email    string
	Password string
}

// AuthResponse carries the provider-issued access token
type AuthResponse struct {
	AuthToken string
	UserID    string
}

// Provider abstracts the external auth service
type Provider interface {
	SignUp(ctx context.Context, req AuthRequest) (*AuthResponse, error)
	Login(ctx context.Context, req AuthRequest) (*AuthResponse, error)
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}
