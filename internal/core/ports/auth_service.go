package ports

import (
	"context"

	"github.com/quillpad/blog-service/internal/core/domain"
)

// AuthService covers registration, login, and session token verification.
type AuthService interface {
	// Register validates the email and password, stores a new account, and
	// returns a signed session token for it.
	Register(ctx context.Context, email, password string) (string, error)

	// Login verifies the credentials and returns a signed session token.
	Login(ctx context.Context, email, password string) (string, error)

	// Authenticate verifies a session token and yields the identity it
	// embeds. Returns domain.ErrInvalidToken on any verification failure.
	Authenticate(token string) (*domain.Identity, error)
}

// TokenVerifier is the subset of AuthService the HTTP auth middleware needs.
type TokenVerifier interface {
	Authenticate(token string) (*domain.Identity, error)
}
