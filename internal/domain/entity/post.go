package entity

import "time"

// Post represents a blog post entity in the system.
// Every post belongs to exactly one author and at least one category.
type Post struct {
	ID           int64
	AuthorID     int64
	Title        string
	Body         string
	CreatedAt    time.Time
	LastModified time.Time
	CategoryIDs  []int64
}

// Category represents a tag a post can be filed under.
type Category struct {
	ID   int64
	Name string
}

// DefaultCategoryNames are seeded on startup so a fresh install always has
// something to file posts under.
var DefaultCategoryNames = []string{
	"Technology",
	"Artificial Intelligence",
	"Programming",
	"Web Development",
	"Data Science",
	"Tutorial",
	"News",
	"Review",
	"Opinion",
	"Business",
	"Productivity",
	"Lifestyle",
}

// Comment represents a reader comment attached to a post.
type Comment struct {
	ID        int64
	PostID    int64
	AuthorID  int64
	Body      string
	CreatedAt time.Time
}
