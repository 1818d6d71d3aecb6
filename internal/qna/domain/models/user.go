package models

import (
	"time"
)

type User struct {
	ID           int       `json:"user_id"` //nolint:tagliatelle
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"` //nolint:tagliatelle
}

// AuthUser is the session record: the authenticated user plus the token
// issued at login or registration. A stored AuthUser means "logged in".
type AuthUser struct {
	User
	Token string `json:"token"`
}
