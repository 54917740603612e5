// Package post provides HTTP handlers for blog post endpoints.
// It includes handlers for creating, listing, updating, and deleting posts.
package post

import (
	"time"

	"github.com/Davidxap/ai-powered-blog-platform/internal/repository"
)

// DTO represents the JSON structure for post data transfer.
type DTO struct {
	ID           int64     `json:"id" example:"1"`
	Author       string    `json:"author" example:"alice"`
	Title        string    `json:"title" example:"Understanding Go Generics"`
	Body         string    `json:"body" example:"Go 1.18 introduced type parameters..."`
	CategoryIDs  []int64   `json:"categoryIds" example:"1,3"`
	CreatedAt    time.Time `json:"createdAt" example:"2026-08-01T10:00:00Z"`
	LastModified time.Time `json:"lastModified" example:"2026-08-02T09:30:00Z"`
}

func toDTO(p repository.PostWithAuthor) DTO {
	return DTO{
		ID:           p.Post.ID,
		Author:       p.AuthorUsername,
		Title:        p.Post.Title,
		Body:         p.Post.Body,
		CategoryIDs:  p.Post.CategoryIDs,
		CreatedAt:    p.Post.CreatedAt,
		LastModified: p.Post.LastModified,
	}
}
