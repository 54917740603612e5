package post_test

import (
	"context"
	"time"

	"github.com/Davidxap/ai-powered-blog-platform/internal/domain/entity"
	"github.com/Davidxap/ai-powered-blog-platform/internal/repository"
)

// stubPostRepo is an in-memory PostRepository shared by the handler tests.
type stubPostRepo struct {
	posts     map[int64]*entity.Post
	authors   map[int64]string
	createErr error
	listErr   error
	lastSaved *entity.Post
	deleted   []int64
	nextID    int64
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{
		posts:   map[int64]*entity.Post{},
		authors: map[int64]string{},
		nextID:  1,
	}
}

func (s *stubPostRepo) add(p *entity.Post, author string) {
	s.posts[p.ID] = p
	s.authors[p.ID] = author
}

func (s *stubPostRepo) Create(_ context.Context, p *entity.Post) error {
	if s.createErr != nil {
		return s.createErr
	}
	p.ID = s.nextID
	s.nextID++
	p.CreatedAt = time.Now()
	p.LastModified = p.CreatedAt
	s.posts[p.ID] = p
	s.lastSaved = p
	return nil
}

func (s *stubPostRepo) Get(_ context.Context, id int64) (*entity.Post, error) {
	return s.posts[id], nil
}

func (s *stubPostRepo) GetWithAuthor(_ context.Context, id int64) (*entity.Post, string, error) {
	p := s.posts[id]
	if p == nil {
		return nil, "", nil
	}
	return p, s.authors[id], nil
}

func (s *stubPostRepo) List(_ context.Context, offset, limit int) ([]repository.PostWithAuthor, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]repository.PostWithAuthor, 0, len(s.posts))
	for id, p := range s.posts {
		out = append(out, repository.PostWithAuthor{Post: p, AuthorUsername: s.authors[id]})
	}
	return out, nil
}

func (s *stubPostRepo) ListByAuthor(_ context.Context, _ int64) ([]*entity.Post, error) {
	return nil, nil
}

func (s *stubPostRepo) ListByCategory(_ context.Context, _ string, _, _ int) ([]repository.PostWithAuthor, error) {
	return nil, s.listErr
}

func (s *stubPostRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.posts)), nil
}

func (s *stubPostRepo) CountByAuthor(_ context.Context, _ int64) (int64, error) {
	return 0, nil
}

func (s *stubPostRepo) CountDistinctCategoriesByAuthor(_ context.Context, _ int64) (int64, error) {
	return 0, nil
}

func (s *stubPostRepo) Update(_ context.Context, p *entity.Post) error {
	s.posts[p.ID] = p
	s.lastSaved = p
	return nil
}

func (s *stubPostRepo) Delete(_ context.Context, id int64) error {
	delete(s.posts, id)
	s.deleted = append(s.deleted, id)
	return nil
}

// stubCategoryRepo treats category IDs 1 through 3 as known.
type stubCategoryRepo struct{}

func (stubCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	return []*entity.Category{{ID: 1, Name: "Technology"}, {ID: 2, Name: "Science"}, {ID: 3, Name: "Travel"}}, nil
}

func (stubCategoryRepo) Get(_ context.Context, id int64) (*entity.Category, error) {
	if id >= 1 && id <= 3 {
		return &entity.Category{ID: id, Name: "Technology"}, nil
	}
	return nil, nil
}

func (stubCategoryRepo) ExistsAll(_ context.Context, ids []int64) (bool, error) {
	for _, id := range ids {
		if id < 1 || id > 3 {
			return false, nil
		}
	}
	return true, nil
}

func (stubCategoryRepo) EnsureDefaults(_ context.Context, _ []string) error {
	return nil
}
