package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Davidxap/ai-powered-blog-platform/internal/domain/entity"
	"github.com/Davidxap/ai-powered-blog-platform/internal/repository"
)

type CategoryRepo struct {
	db *sql.DB
}

func NewCategoryRepo(db *sql.DB) repository.CategoryRepository {
	return &CategoryRepo{db: db}
}

func (repo *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	const query = `SELECT id, name FROM categories ORDER BY name`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	categories := make([]*entity.Category, 0, 16)
	for rows.Next() {
		var category entity.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		categories = append(categories, &category)
	}
	return categories, rows.Err()
}

func (repo *CategoryRepo) Get(ctx context.Context, id int64) (*entity.Category, error) {
	const query = `SELECT id, name FROM categories WHERE id = $1`
	var category entity.Category
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&category.ID, &category.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &category, nil
}

// ExistsAll reports whether every id refers to an existing category.
func (repo *CategoryRepo) ExistsAll(ctx context.Context, ids []int64) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	const query = `SELECT COUNT(*) FROM categories WHERE id = ANY($1)`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, ids).Scan(&count); err != nil {
		return false, fmt.Errorf("ExistsAll: %w", err)
	}
	return count == int64(len(distinct(ids))), nil
}

func distinct(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// EnsureDefaults inserts any missing category names. Existing rows are left
// untouched so it is safe to call on every startup.
func (repo *CategoryRepo) EnsureDefaults(ctx context.Context, names []string) error {
	const query = `INSERT INTO categories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`
	for _, name := range names {
		if _, err := repo.db.ExecContext(ctx, query, name); err != nil {
			return fmt.Errorf("EnsureDefaults: %q: %w", name, err)
		}
	}
	return nil
}
