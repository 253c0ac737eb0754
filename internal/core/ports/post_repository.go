package ports

import (
	"context"

	"github.com/quillpad/blog-service/internal/core/domain"
)

// PostRepository defines the persistence interface for posts. Every method
// that addresses a single post takes the owner's ID; a row that exists but
// belongs to someone else is reported as domain.ErrPostNotFound.
type PostRepository interface {
	// ListByOwner returns all posts for ownerID ordered by creation time,
	// newest first.
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Post, error)

	// FindByID returns the post matching (id, ownerID).
	FindByID(ctx context.Context, ownerID, id int64) (*domain.Post, error)

	// Create inserts the post and returns it with the generated ID.
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)

	// Update rewrites title, content and updated_at for the row matching
	// (post.ID, post.UserID) and returns the stored row.
	Update(ctx context.Context, post *domain.Post) (*domain.Post, error)

	// Delete removes the row matching (id, ownerID).
	Delete(ctx context.Context, ownerID, id int64) error
}
