package domain

import "errors"

// Domain error taxonomy. The API layer maps each sentinel to a deterministic
// HTTP status; everything else is treated as an internal error.
var (
	// ErrInvalidInput covers malformed or missing request fields caught by
	// server-side validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password so a caller cannot tell which of the two failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers a missing, malformed, badly signed, or expired
	// session token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already exists")

	// ErrPostNotFound is returned both when a post does not exist and when it
	// exists but belongs to another user. The two cases are deliberately
	// indistinguishable to the caller.
	ErrPostNotFound = errors.New("post not found")
)
