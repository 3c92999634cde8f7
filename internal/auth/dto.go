package auth

import "github.com/angelmondragon/pricetracker-backend/internal/users"

// RegisterRequest captures the credentials sent to the register endpoint.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest captures the credentials sent to the login endpoint. Email
// format is deliberately not validated here: a malformed address should fail
// the same way as an unknown one.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse contains the session token and user produced by a successful
// register or login.
type AuthResponse struct {
	Token string         `json:"token"`
	User  *users.UserDTO `json:"user"`
}
