// Package dashboard aggregates per-author statistics for the dashboard view.
package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Davidxap/ai-powered-blog-platform/internal/repository"
)

// Stats holds the aggregate numbers shown on an author's dashboard.
type Stats struct {
	PostCount      int64
	CommentCount   int64
	CategoriesUsed int64
}

// Service provides dashboard aggregation use cases.
type Service struct {
	Posts    repository.PostRepository
	Comments repository.CommentRepository
}

// Stats gathers the author's post count, comments received across their
// posts, and distinct categories used. The three counts run concurrently;
// the first failure cancels the rest.
func (s *Service) Stats(ctx context.Context, authorID int64) (*Stats, error) {
	var stats Stats

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.Posts.CountByAuthor(ctx, authorID)
		stats.PostCount = count
		return err
	})
	g.Go(func() error {
		count, err := s.Comments.CountForAuthorPosts(ctx, authorID)
		stats.CommentCount = count
		return err
	})
	g.Go(func() error {
		count, err := s.Posts.CountDistinctCategoriesByAuthor(ctx, authorID)
		stats.CategoriesUsed = count
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &stats, nil
}
