package ports

import (
	"context"

	"github.com/quillpad/blog-service/internal/core/domain"
)

// PostService exposes owner-scoped CRUD on posts. Callers pass the identity
// resolved from the session token; the service never widens access beyond it.
type PostService interface {
	List(ctx context.Context, ownerID int64) ([]domain.Post, error)
	Get(ctx context.Context, ownerID, postID int64) (*domain.Post, error)
	Create(ctx context.Context, ownerID int64, title, content string) (*domain.Post, error)
	Update(ctx context.Context, ownerID, postID int64, title, content string) (*domain.Post, error)
	Delete(ctx context.Context, ownerID, postID int64) error
}
