package ports

import (
	"context"

	"github.com/quillpad/blog-service/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
type UserRepository interface {
	// Create inserts the user and returns it with the generated ID.
	// Returns domain.ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// FindByEmail returns domain.ErrInvalidCredentials when no user matches,
	// so lookup failure and password failure are indistinguishable upstream.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
