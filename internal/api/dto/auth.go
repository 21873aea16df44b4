package dto

import (
	"github.com/puntoventa/puntoventa/internal/auth"
	"github.com/puntoventa/puntoventa/internal/validator"
)

// SignUpRequest represents a request to create a new account
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r *SignUpRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *SignUpRequest) ToAuthRequest() auth.AuthRequest {
	return auth.AuthRequest{
		Email:    r.Email,
		Password: r.Password,
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *LoginRequest) ToAuthRequest() auth.AuthRequest {
	return auth.AuthRequest{
		Email:    r.Email,
		Password: r.Password,
	}
}

// AuthResponse represents a successful signup or login
type AuthResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}
