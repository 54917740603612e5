// Package repository defines persistence interfaces for the domain entities.
// Concrete implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"github.com/Davidxap/ai-powered-blog-platform/internal/domain/entity"
)

type UserRepository interface {
	// Create persists a new user and assigns its ID.
	Create(ctx context.Context, user *entity.User) error
	// GetByID retrieves a user by ID. Returns (nil, nil) if not found.
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	// GetByUsername retrieves a user by username. Returns (nil, nil) if not found.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// ExistsByUsername reports whether a user with the given username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
