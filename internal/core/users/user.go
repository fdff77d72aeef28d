package users

import (
	"time"
)

// User is an account that can log in, comment, and vote.
// PasswordHash never leaves the package boundary in responses.
type User struct {
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
	Email        string    `json:"email" db:"email"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	ID           int64     `json:"id" db:"id"`
	IsAdmin      bool      `json:"isAdmin" db:"is_admin"`
}

// RegisterRequest represents the input for creating a new account
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token issued on successful login.
// The token goes in the x-auth-token header on subsequent requests.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
