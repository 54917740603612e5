package repository

import (
	"context"

	"github.com/Davidxap/ai-powered-blog-platform/internal/domain/entity"
)

// CommentWithAuthor represents a comment along with its author's username.
type CommentWithAuthor struct {
	Comment        *entity.Comment
	AuthorUsername string
}

type CommentRepository interface {
	// Create persists a new comment and assigns its ID.
	Create(ctx context.Context, comment *entity.Comment) error
	// ListByPost retrieves all comments on a post, newest first.
	ListByPost(ctx context.Context, postID int64) ([]CommentWithAuthor, error)
	// CountForAuthorPosts returns the number of comments left on any post
	// written by the given author. Used for dashboard statistics.
	CountForAuthorPosts(ctx context.Context, authorID int64) (int64, error)
}
