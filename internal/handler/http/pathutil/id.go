package pathutil

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ExtractID extracts and parses an integer ID from a URL path.
// It removes the specified prefix and attempts to parse the remaining string as an int64.
//
// Example:
//
//	id, err := ExtractID("/posts/123", "/posts/")
//	// Returns: 123, nil
func ExtractID(path, prefix string) (int64, error) {
	idStr := strings.TrimPrefix(path, prefix)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ExtractIDBetween extracts an integer ID sitting between a prefix and a
// suffix, as in "/posts/123/comments".
//
// Example:
//
//	id, err := ExtractIDBetween("/posts/123/comments", "/posts/", "/comments")
//	// Returns: 123, nil
func ExtractIDBetween(path, prefix, suffix string) (int64, error) {
	trimmed := strings.TrimPrefix(path, prefix)
	if !strings.HasSuffix(trimmed, suffix) {
		return 0, ErrInvalidID
	}
	return ExtractID(strings.TrimSuffix(trimmed, suffix), "")
}
