package model

import "time"

// UserID uniquely identifies a registered user
type UserID string

// User is a registered account. PasswordHash is a bcrypt hash and must
// never leave the service layer.
type User struct {
	ID           UserID
	Email        string // login email (unique, immutable)
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
