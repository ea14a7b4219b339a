package dto

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/mealplan-simple/models"
)

// TokenClaims represents the identity claims carried by an access token.
// Only the registered subject/issued-at/expires-at claims are used.
type TokenClaims struct {
	jwt.RegisteredClaims
}

// RegisterRequest represents registration data
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents the response after authentication
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}
