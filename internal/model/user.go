package model

import "time"

// User represents a login for the household. The tracker is single-tenant;
// users exist so sessions can be issued and revoked, not for multi-tenancy.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}

// Session is the decrypted payload of a session token.
type Session struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}
