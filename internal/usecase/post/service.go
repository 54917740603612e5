// Package post provides blog post management use cases.
package post

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Davidxap/ai-powered-blog-platform/internal/domain/entity"
	"github.com/Davidxap/ai-powered-blog-platform/internal/observability/metrics"
	"github.com/Davidxap/ai-powered-blog-platform/internal/repository"
)

// ErrNotPostAuthor is returned when a user tries to modify a post they do
// not own.
var ErrNotPostAuthor = errors.New("only the author can modify this post")

// ErrUnknownCategory is returned when a post references a category that
// does not exist.
var ErrUnknownCategory = errors.New("unknown category")

// CreateInput represents the input parameters for creating a new post.
type CreateInput struct {
	AuthorID    int64
	Title       string
	Body        string
	CategoryIDs []int64

	// Origin tags the post source for metrics: "manual" or "generated".
	Origin string
}

// UpdateInput represents the input parameters for updating an existing post.
type UpdateInput struct {
	ID          int64
	AuthorID    int64
	Title       string
	Body        string
	CategoryIDs []int64
}

// Service provides post management use cases. Ownership checks live here:
// repositories stay policy-free.
type Service struct {
	Posts      repository.PostRepository
	Categories repository.CategoryRepository
}

// Create validates the input and stores a new post with its category links.
// At least one existing category is required.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Post, error) {
	if err := validateContent(in.Title, in.Body); err != nil {
		return nil, err
	}
	if len(in.CategoryIDs) == 0 {
		return nil, &entity.ValidationError{Field: "categoryIds", Message: "at least one category is required"}
	}
	ok, err := s.Categories.ExistsAll(ctx, in.CategoryIDs)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	if !ok {
		return nil, ErrUnknownCategory
	}

	post := &entity.Post{
		AuthorID:    in.AuthorID,
		Title:       in.Title,
		Body:        in.Body,
		CategoryIDs: in.CategoryIDs,
	}
	if err := s.Posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	origin := in.Origin
	if origin == "" {
		origin = "manual"
	}
	metrics.RecordPostCreated(origin)
	slog.InfoContext(ctx, "Post created",
		slog.Int64("post_id", post.ID),
		slog.Int64("author_id", post.AuthorID),
		slog.String("origin", origin))

	return post, nil
}

func validateContent(title, body string) error {
	if err := entity.ValidateTitle(title); err != nil {
		return err
	}
	if body == "" {
		return &entity.ValidationError{Field: "body", Message: "is required"}
	}
	return nil
}

// Get retrieves one post with its author's username.
// Returns entity.ErrNotFound when absent.
func (s *Service) Get(ctx context.Context, id int64) (*repository.PostWithAuthor, error) {
	post, username, err := s.Posts.GetWithAuthor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if post == nil {
		return nil, entity.ErrNotFound
	}
	return &repository.PostWithAuthor{Post: post, AuthorUsername: username}, nil
}

// List returns a page of posts, newest first, with the total count.
func (s *Service) List(ctx context.Context, offset, limit int) ([]repository.PostWithAuthor, int64, error) {
	posts, err := s.Posts.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	total, err := s.Posts.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	return posts, total, nil
}

// ListByCategory returns a page of posts in the named category.
func (s *Service) ListByCategory(ctx context.Context, category string, offset, limit int) ([]repository.PostWithAuthor, error) {
	posts, err := s.Posts.ListByCategory(ctx, category, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list posts by category: %w", err)
	}
	return posts, nil
}

// Update modifies an existing post. Only the author may update it.
func (s *Service) Update(ctx context.Context, in UpdateInput) error {
	if err := validateContent(in.Title, in.Body); err != nil {
		return err
	}
	if len(in.CategoryIDs) == 0 {
		return &entity.ValidationError{Field: "categoryIds", Message: "at least one category is required"}
	}

	existing, err := s.Posts.Get(ctx, in.ID)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if existing == nil {
		return entity.ErrNotFound
	}
	if existing.AuthorID != in.AuthorID {
		return ErrNotPostAuthor
	}

	ok, err := s.Categories.ExistsAll(ctx, in.CategoryIDs)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if !ok {
		return ErrUnknownCategory
	}

	existing.Title = in.Title
	existing.Body = in.Body
	existing.CategoryIDs = in.CategoryIDs
	if err := s.Posts.Update(ctx, existing); err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	return nil
}

// Delete removes a post. Only the author may delete it.
func (s *Service) Delete(ctx context.Context, id, authorID int64) error {
	existing, err := s.Posts.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if existing == nil {
		return entity.ErrNotFound
	}
	if existing.AuthorID != authorID {
		return ErrNotPostAuthor
	}
	if err := s.Posts.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	slog.InfoContext(ctx, "Post deleted",
		slog.Int64("post_id", id),
		slog.Int64("author_id", authorID))
	return nil
}
