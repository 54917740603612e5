package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
// Pre-compiled at initialization.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/posts/\d+/comments$`), Template: "/posts/:id/comments"},
	{Pattern: regexp.MustCompile(`^/posts/\d+$`), Template: "/posts/:id"},
	{Pattern: regexp.MustCompile(`^/users/\d+$`), Template: "/users/:id"},
	{Pattern: regexp.MustCompile(`^/categories/\d+$`), Template: "/categories/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with IDs (e.g., /posts/123) to template format (e.g., /posts/:id).
// Static paths remain unchanged.
//
// Examples:
//
//	NormalizePath("/posts/123")          // "/posts/:id"
//	NormalizePath("/posts/123/comments") // "/posts/:id/comments"
//	NormalizePath("/healthz")            // "/healthz" (unchanged)
//	NormalizePath("/posts/123?page=1")   // "/posts/:id"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return path
}
