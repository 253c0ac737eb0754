package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/quillpad/blog-service/internal/core/domain"
	"github.com/quillpad/blog-service/internal/core/ports"
)

// PostService implements owner-scoped CRUD on posts.
type PostService struct {
	repo   ports.PostRepository
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, logger: logger}
}

func (s *PostService) List(ctx context.Context, ownerID int64) ([]domain.Post, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *PostService) Get(ctx context.Context, ownerID, postID int64) (*domain.Post, error) {
	return s.repo.FindByID(ctx, ownerID, postID)
}

// Create inserts a new post for ownerID. Title and content are trimmed before
// validation and stored trimmed; whitespace-only values are rejected.
func (s *PostService) Create(ctx context.Context, ownerID int64, title, content string) (*domain.Post, error) {
	title, content, err := sanitize(title, content)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := &domain.Post{
		UserID:    ownerID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", ownerID).Msg("failed to create post")
		return nil, err
	}

	s.logger.Info().Int64("post_id", created.ID).Int64("user_id", ownerID).Msg("post created")
	return created, nil
}

// Update rewrites title and content and refreshes the updated timestamp. A
// post that does not exist and a post owned by someone else both yield
// domain.ErrPostNotFound; the creation timestamp is left untouched.
func (s *PostService) Update(ctx context.Context, ownerID, postID int64, title, content string) (*domain.Post, error) {
	title, content, err := sanitize(title, content)
	if err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, &domain.Post{
		ID:        postID,
		UserID:    ownerID,
		Title:     title,
		Content:   content,
		UpdatedAt: time.Now().UTC(),
	})
}

func (s *PostService) Delete(ctx context.Context, ownerID, postID int64) error {
	if err := s.repo.Delete(ctx, ownerID, postID); err != nil {
		return err
	}
	s.logger.Info().Int64("post_id", postID).Int64("user_id", ownerID).Msg("post deleted")
	return nil
}

func sanitize(title, content string) (string, string, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return "", "", domain.ErrInvalidInput
	}
	return title, content, nil
}
