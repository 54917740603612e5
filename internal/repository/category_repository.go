package repository

import (
	"context"

	"github.com/Davidxap/ai-powered-blog-platform/internal/domain/entity"
)

type CategoryRepository interface {
	// List retrieves all categories ordered by name.
	List(ctx context.Context) ([]*entity.Category, error)
	// Get retrieves a category by ID. Returns (nil, nil) if not found.
	Get(ctx context.Context, id int64) (*entity.Category, error)
	// ExistsAll reports whether every given category ID exists.
	ExistsAll(ctx context.Context, ids []int64) (bool, error)
	// EnsureDefaults inserts the seed categories that do not exist yet.
	// It is idempotent and safe to run on every startup.
	EnsureDefaults(ctx context.Context, names []string) error
}
