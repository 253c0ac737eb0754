package domain

import "time"

// User models a registered account. The password is stored only as a bcrypt
// hash and is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the authenticated principal embedded in a session token.
type Identity struct {
	UserID int64
	Email  string
}
