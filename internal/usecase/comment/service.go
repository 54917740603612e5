// Package comment provides comment management use cases.
package comment

import (
	"context"
	"fmt"

	"github.com/Davidxap/ai-powered-blog-platform/internal/domain/entity"
	"github.com/Davidxap/ai-powered-blog-platform/internal/observability/metrics"
	"github.com/Davidxap/ai-powered-blog-platform/internal/repository"
)

// CreateInput represents the input parameters for creating a comment.
type CreateInput struct {
	PostID   int64
	AuthorID int64
	Body     string
}

// Service provides comment use cases.
type Service struct {
	Comments repository.CommentRepository
	Posts    repository.PostRepository
}

// Create validates the input and stores a comment on an existing post.
// Returns entity.ErrNotFound when the post does not exist.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Comment, error) {
	if in.Body == "" {
		return nil, &entity.ValidationError{Field: "body", Message: "is required"}
	}

	post, err := s.Posts.Get(ctx, in.PostID)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	if post == nil {
		return nil, entity.ErrNotFound
	}

	comment := &entity.Comment{
		PostID:   in.PostID,
		AuthorID: in.AuthorID,
		Body:     in.Body,
	}
	if err := s.Comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	metrics.RecordCommentCreated()
	return comment, nil
}

// ListByPost returns all comments on a post in chronological order.
// Returns entity.ErrNotFound when the post does not exist.
func (s *Service) ListByPost(ctx context.Context, postID int64) ([]repository.CommentWithAuthor, error) {
	post, err := s.Posts.Get(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	if post == nil {
		return nil, entity.ErrNotFound
	}

	comments, err := s.Comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
