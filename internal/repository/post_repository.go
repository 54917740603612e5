package repository

import (
	"context"

	"github.com/Davidxap/ai-powered-blog-platform/internal/domain/entity"
)

// PostWithAuthor represents a post along with its author's username.
type PostWithAuthor struct {
	Post           *entity.Post
	AuthorUsername string
}

type PostRepository interface {
	// Create persists a new post together with its category links in one
	// transaction and assigns the post ID.
	Create(ctx context.Context, post *entity.Post) error
	// Get retrieves a post by ID including its category IDs.
	// Returns (nil, nil) if the post is not found.
	Get(ctx context.Context, id int64) (*entity.Post, error)
	// GetWithAuthor retrieves a post by ID along with the author's username.
	// Returns (nil, "", nil) if the post is not found.
	GetWithAuthor(ctx context.Context, id int64) (*entity.Post, string, error)
	// List retrieves posts ordered by creation time descending.
	// Uses LIMIT and OFFSET for pagination.
	List(ctx context.Context, offset, limit int) ([]PostWithAuthor, error)
	// ListByAuthor retrieves all posts written by the given author,
	// newest first.
	ListByAuthor(ctx context.Context, authorID int64) ([]*entity.Post, error)
	// ListByCategory retrieves posts tagged with the named category,
	// newest first.
	ListByCategory(ctx context.Context, category string, offset, limit int) ([]PostWithAuthor, error)
	// Count returns the total number of posts.
	Count(ctx context.Context) (int64, error)
	// CountByAuthor returns the number of posts written by the given author.
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
	// CountDistinctCategoriesByAuthor returns the number of distinct
	// categories the author has published under.
	CountDistinctCategoriesByAuthor(ctx context.Context, authorID int64) (int64, error)
	// Update replaces the post's title, body, and category links, and
	// refreshes last_modified.
	Update(ctx context.Context, post *entity.Post) error
	// Delete removes a post and cascades to its comments and category links.
	Delete(ctx context.Context, id int64) error
}
