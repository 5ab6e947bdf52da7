package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name"`
	GoogleID  *string   `json:"-"`
	IsActive  bool      `json:"is_active"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// Sent by the storefront after it completed the Google sign-in flow. Email and
// GoogleID, when present, must match the verified ID token.
type GoogleLoginRequest struct {
	IDToken  string  `json:"id_token" validate:"required"`
	Email    string  `json:"email,omitempty" validate:"omitempty,email"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=200"`
	GoogleID string  `json:"google_id,omitempty" validate:"omitempty,max=255"`
}

// GoogleIdentity is the subset of a verified Google ID token the API relies on.
type GoogleIdentity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
}

type LoginResponse struct {
	Success  bool      `json:"success"`
	UserID   uuid.UUID `json:"user_id"`
	Email    string    `json:"email"`
	FullName *string   `json:"full_name"`
	IsAdmin  bool      `json:"is_admin"`
	Message  string    `json:"message"`
}

// Claims carried by the session cookie.
type Claims struct {
	UserID  uuid.UUID `json:"user_id"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"is_admin"`
	jwt.RegisteredClaims
}
