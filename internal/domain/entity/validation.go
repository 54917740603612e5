package entity

import (
	"fmt"
	"net/mail"
	"strings"
)

const (
	// maxTitleLength mirrors the posts.title column width.
	maxTitleLength = 255

	// maxUsernameLength mirrors the users.username column width.
	maxUsernameLength = 150

	// maxCategoryNameLength mirrors the categories.name column width.
	maxCategoryNameLength = 30
)

// ValidateTitle validates a post title for presence and length.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if len(title) > maxTitleLength {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("must not exceed %d characters", maxTitleLength),
		}
	}
	return nil
}

// ValidateUsername validates a username for presence, length, and charset.
// Usernames are restricted to letters, digits, and @.+-_ like the common
// web framework convention, so they remain safe in URLs and logs.
func ValidateUsername(username string) error {
	if username == "" {
		return &ValidationError{Field: "username", Message: "is required"}
	}
	if len(username) > maxUsernameLength {
		return &ValidationError{
			Field:   "username",
			Message: fmt.Sprintf("must not exceed %d characters", maxUsernameLength),
		}
	}
	for _, r := range username {
		if !isUsernameRune(r) {
			return &ValidationError{
				Field:   "username",
				Message: "may only contain letters, digits, and @.+-_",
			}
		}
	}
	return nil
}

func isUsernameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '@', r == '.', r == '+', r == '-', r == '_':
		return true
	}
	return false
}

// ValidateEmail validates an email address using RFC 5322 parsing.
func ValidateEmail(email string) error {
	if email == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return &ValidationError{Field: "email", Message: "is not a valid address"}
	}
	return nil
}

// ValidateCategoryName validates a category name for presence and length.
func ValidateCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if len(name) > maxCategoryNameLength {
		return &ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("must not exceed %d characters", maxCategoryNameLength),
		}
	}
	return nil
}
