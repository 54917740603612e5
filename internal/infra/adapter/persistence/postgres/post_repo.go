package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Davidxap/ai-powered-blog-platform/internal/domain/entity"
	"github.com/Davidxap/ai-powered-blog-platform/internal/repository"
)

type PostRepo struct {
	db *sql.DB
}

func NewPostRepo(db *sql.DB) repository.PostRepository {
	return &PostRepo{db: db}
}

// Create inserts the post and its category links in a single transaction so
// a post can never exist without its categories.
func (repo *PostRepo) Create(ctx context.Context, post *entity.Post) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Create: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const insertPost = `
INSERT INTO posts (author_id, title, body)
VALUES ($1, $2, $3)
RETURNING id, created_at, last_modified`
	if err := tx.QueryRowContext(ctx, insertPost,
		post.AuthorID, post.Title, post.Body,
	).Scan(&post.ID, &post.CreatedAt, &post.LastModified); err != nil {
		return fmt.Errorf("Create: insert post: %w", err)
	}

	if err := insertCategoryLinks(ctx, tx, post.ID, post.CategoryIDs); err != nil {
		return fmt.Errorf("Create: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Create: commit: %w", err)
	}
	return nil
}

func insertCategoryLinks(ctx context.Context, tx *sql.Tx, postID int64, categoryIDs []int64) error {
	const link = `INSERT INTO post_categories (post_id, category_id) VALUES ($1, $2)`
	for _, catID := range categoryIDs {
		if _, err := tx.ExecContext(ctx, link, postID, catID); err != nil {
			return fmt.Errorf("link category %d: %w", catID, err)
		}
	}
	return nil
}

func (repo *PostRepo) Get(ctx context.Context, id int64) (*entity.Post, error) {
	const query = `
SELECT id, author_id, title, body, created_at, last_modified
FROM posts
WHERE id = $1`
	var post entity.Post
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.AuthorID, &post.Title, &post.Body,
		&post.CreatedAt, &post.LastModified)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}

	if post.CategoryIDs, err = repo.categoryIDs(ctx, id); err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &post, nil
}

func (repo *PostRepo) GetWithAuthor(ctx context.Context, id int64) (*entity.Post, string, error) {
	const query = `
SELECT p.id, p.author_id, p.title, p.body, p.created_at, p.last_modified, u.username
FROM posts p
INNER JOIN users u ON p.author_id = u.id
WHERE p.id = $1`
	var post entity.Post
	var username string
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.AuthorID, &post.Title, &post.Body,
		&post.CreatedAt, &post.LastModified, &username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("GetWithAuthor: %w", err)
	}

	if post.CategoryIDs, err = repo.categoryIDs(ctx, id); err != nil {
		return nil, "", fmt.Errorf("GetWithAuthor: %w", err)
	}
	return &post, username, nil
}

// categoryIDs loads the ordered category links for one post.
func (repo *PostRepo) categoryIDs(ctx context.Context, postID int64) ([]int64, error) {
	const query = `
SELECT category_id FROM post_categories WHERE post_id = $1 ORDER BY category_id`
	rows, err := repo.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("categoryIDs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ids := make([]int64, 0, 4)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("categoryIDs: Scan: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (repo *PostRepo) List(ctx context.Context, offset, limit int) ([]repository.PostWithAuthor, error) {
	const query = `
SELECT p.id, p.author_id, p.title, p.body, p.created_at, p.last_modified, u.username
FROM posts p
INNER JOIN users u ON p.author_id = u.id
ORDER BY p.created_at DESC
LIMIT $1 OFFSET $2`
	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanPostsWithAuthor(rows, "List")
}

func (repo *PostRepo) ListByAuthor(ctx context.Context, authorID int64) ([]*entity.Post, error) {
	const query = `
SELECT id, author_id, title, body, created_at, last_modified
FROM posts
WHERE author_id = $1
ORDER BY created_at DESC`
	rows, err := repo.db.QueryContext(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("ListByAuthor: %w", err)
	}
	defer func() { _ = rows.Close() }()

	posts := make([]*entity.Post, 0, 20)
	for rows.Next() {
		var post entity.Post
		if err := rows.Scan(&post.ID, &post.AuthorID, &post.Title, &post.Body,
			&post.CreatedAt, &post.LastModified); err != nil {
			return nil, fmt.Errorf("ListByAuthor: Scan: %w", err)
		}
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}

func (repo *PostRepo) ListByCategory(ctx context.Context, category string, offset, limit int) ([]repository.PostWithAuthor, error) {
	const query = `
SELECT p.id, p.author_id, p.title, p.body, p.created_at, p.last_modified, u.username
FROM posts p
INNER JOIN users u ON p.author_id = u.id
INNER JOIN post_categories pc ON pc.post_id = p.id
INNER JOIN categories c ON c.id = pc.category_id
WHERE c.name = $1
ORDER BY p.created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := repo.db.QueryContext(ctx, query, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListByCategory: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanPostsWithAuthor(rows, "ListByCategory")
}

func scanPostsWithAuthor(rows *sql.Rows, op string) ([]repository.PostWithAuthor, error) {
	result := make([]repository.PostWithAuthor, 0, 20)
	for rows.Next() {
		var post entity.Post
		var username string
		if err := rows.Scan(&post.ID, &post.AuthorID, &post.Title, &post.Body,
			&post.CreatedAt, &post.LastModified, &username); err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		result = append(result, repository.PostWithAuthor{
			Post:           &post,
			AuthorUsername: username,
		})
	}
	return result, rows.Err()
}

func (repo *PostRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM posts`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *PostRepo) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM posts WHERE author_id = $1`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, authorID).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountByAuthor: %w", err)
	}
	return count, nil
}

func (repo *PostRepo) CountDistinctCategoriesByAuthor(ctx context.Context, authorID int64) (int64, error) {
	const query = `
SELECT COUNT(DISTINCT pc.category_id)
FROM post_categories pc
INNER JOIN posts p ON p.id = pc.post_id
WHERE p.author_id = $1`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, authorID).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountDistinctCategoriesByAuthor: %w", err)
	}
	return count, nil
}

// Update replaces the post row and rewrites its category links in one
// transaction. last_modified is refreshed by the statement itself.
func (repo *PostRepo) Update(ctx context.Context, post *entity.Post) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Update: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const update = `
UPDATE posts
SET title = $1, body = $2, last_modified = now()
WHERE id = $3`
	if _, err := tx.ExecContext(ctx, update, post.Title, post.Body, post.ID); err != nil {
		return fmt.Errorf("Update: %w", err)
	}

	const unlink = `DELETE FROM post_categories WHERE post_id = $1`
	if _, err := tx.ExecContext(ctx, unlink, post.ID); err != nil {
		return fmt.Errorf("Update: unlink categories: %w", err)
	}
	if err := insertCategoryLinks(ctx, tx, post.ID, post.CategoryIDs); err != nil {
		return fmt.Errorf("Update: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Update: commit: %w", err)
	}
	return nil
}

func (repo *PostRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM posts WHERE id = $1`
	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}
