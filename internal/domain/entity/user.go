// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as User, Post, Category, and Comment,
// along with their validation rules and domain-specific errors.
package entity

import "time"

// User represents a registered author in the system.
// PasswordHash holds a bcrypt hash and is never serialized to clients.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
