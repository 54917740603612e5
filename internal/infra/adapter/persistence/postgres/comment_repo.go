package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Davidxap/ai-powered-blog-platform/internal/domain/entity"
	"github.com/Davidxap/ai-powered-blog-platform/internal/repository"
)

type CommentRepo struct {
	db *sql.DB
}

func NewCommentRepo(db *sql.DB) repository.CommentRepository {
	return &CommentRepo{db: db}
}

func (repo *CommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	const query = `
INSERT INTO comments (post_id, author_id, body)
VALUES ($1, $2, $3)
RETURNING id, created_at`
	if err := repo.db.QueryRowContext(ctx, query,
		comment.PostID, comment.AuthorID, comment.Body,
	).Scan(&comment.ID, &comment.CreatedAt); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *CommentRepo) ListByPost(ctx context.Context, postID int64) ([]repository.CommentWithAuthor, error) {
	const query = `
SELECT c.id, c.post_id, c.author_id, c.body, c.created_at, u.username
FROM comments c
INNER JOIN users u ON c.author_id = u.id
WHERE c.post_id = $1
ORDER BY c.created_at ASC`
	rows, err := repo.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ListByPost: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]repository.CommentWithAuthor, 0, 10)
	for rows.Next() {
		var comment entity.Comment
		var username string
		if err := rows.Scan(&comment.ID, &comment.PostID, &comment.AuthorID,
			&comment.Body, &comment.CreatedAt, &username); err != nil {
			return nil, fmt.Errorf("ListByPost: Scan: %w", err)
		}
		comments = append(comments, repository.CommentWithAuthor{
			Comment:        &comment,
			AuthorUsername: username,
		})
	}
	return comments, rows.Err()
}

// CountForAuthorPosts counts comments received across all posts written by
// the given author.
func (repo *CommentRepo) CountForAuthorPosts(ctx context.Context, authorID int64) (int64, error) {
	const query = `
SELECT COUNT(*)
FROM comments c
INNER JOIN posts p ON p.id = c.post_id
WHERE p.author_id = $1`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, authorID).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountForAuthorPosts: %w", err)
	}
	return count, nil
}
