// Package pagination provides offset-based pagination helpers shared by
// the list endpoints.
package pagination

import (
	"fmt"
	"net/http"
	"strconv"

	pkgconfig "github.com/Davidxap/ai-powered-blog-platform/pkg/config"
)

// Config holds pagination limits. These can be loaded from environment
// variables or left at the defaults.
type Config struct {
	DefaultPage  int
	DefaultLimit int
	MaxLimit     int
}

// DefaultConfig returns page=1, limit=20, max=100.
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 20,
		MaxLimit:     100,
	}
}

// LoadFromEnv loads pagination config from PAGINATION_DEFAULT_PAGE,
// PAGINATION_DEFAULT_LIMIT, and PAGINATION_MAX_LIMIT, falling back to the
// defaults for unset or unparsable values.
func LoadFromEnv() Config {
	return Config{
		DefaultPage:  pkgconfig.GetEnvInt("PAGINATION_DEFAULT_PAGE", 1),
		DefaultLimit: pkgconfig.GetEnvInt("PAGINATION_DEFAULT_LIMIT", 20),
		MaxLimit:     pkgconfig.GetEnvInt("PAGINATION_MAX_LIMIT", 100),
	}
}

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Page  int // 1-based page number
	Limit int // Items per page
}

// Offset returns the database OFFSET for these params. Page 1 has offset 0.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParseQueryParams parses the page and limit query parameters, applying the
// configured defaults when they are absent. Invalid values return an error.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{
		Page:  config.DefaultPage,
		Limit: config.DefaultLimit,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return params, fmt.Errorf("invalid query parameter: page must be a positive integer")
		}
		params.Page = page
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > config.MaxLimit {
			return params, fmt.Errorf("invalid query parameter: limit must be between 1 and %d", config.MaxLimit)
		}
		params.Limit = limit
	}

	return params, nil
}

// Metadata contains pagination metadata included in list responses.
type Metadata struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// NewMetadata builds response metadata from the request params and the total
// row count. An empty result set still reports one page.
func NewMetadata(params Params, total int64) Metadata {
	totalPages := 1
	if total > 0 {
		totalPages = int((total + int64(params.Limit) - 1) / int64(params.Limit))
	}
	return Metadata{
		Total:      total,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: totalPages,
	}
}

// Response is a generic paginated response wrapper.
type Response[T any] struct {
	Data       []T      `json:"data"`
	Pagination Metadata `json:"pagination"`
}

// NewResponse creates a paginated response with data and metadata.
func NewResponse[T any](data []T, metadata Metadata) Response[T] {
	return Response[T]{
		Data:       data,
		Pagination: metadata,
	}
}
