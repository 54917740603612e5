package entity

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested entity does not exist. Services
// return it for missing posts, users, comments, and categories alike; the
// HTTP layer maps it to 404.
var ErrNotFound = errors.New("entity not found")

// ValidationError reports which field of a request failed validation. The
// response layer treats it as safe to echo back to the client.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
