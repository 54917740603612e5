package post_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Davidxap/ai-powered-blog-platform/internal/domain/entity"
	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/post"
	postUC "github.com/Davidxap/ai-powered-blog-platform/internal/usecase/post"
)

func TestGetHandler_Success(t *testing.T) {
	now := time.Now()
	repo := newStubPostRepo()
	repo.add(&entity.Post{
		ID:           1,
		AuthorID:     7,
		Title:        "Kubernetes Operators Explained",
		Body:         "An operator extends the control plane.",
		CreatedAt:    now,
		LastModified: now,
		CategoryIDs:  []int64{1, 3},
	}, "alice")

	handler := post.GetHandler{Svc: &postUC.Service{Posts: repo, Categories: stubCategoryRepo{}}}

	req := httptest.NewRequest(http.MethodGet, "/posts/1", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var result post.DTO
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.ID != 1 {
		t.Errorf("result.ID = %d, want 1", result.ID)
	}
	if result.Author != "alice" {
		t.Errorf("result.Author = %q, want %q", result.Author, "alice")
	}
	if result.Title != "Kubernetes Operators Explained" {
		t.Errorf("result.Title = %q, want %q", result.Title, "Kubernetes Operators Explained")
	}
	if len(result.CategoryIDs) != 2 {
		t.Errorf("len(CategoryIDs) = %d, want 2", len(result.CategoryIDs))
	}
}

func TestGetHandler_InvalidID(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "zero id", path: "/posts/0"},
		{name: "negative id", path: "/posts/-1"},
		{name: "non-numeric id", path: "/posts/abc"},
		{name: "empty id", path: "/posts/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := post.GetHandler{Svc: &postUC.Service{Posts: newStubPostRepo(), Categories: stubCategoryRepo{}}}

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestGetHandler_NotFound(t *testing.T) {
	handler := post.GetHandler{Svc: &postUC.Service{Posts: newStubPostRepo(), Categories: stubCategoryRepo{}}}

	req := httptest.NewRequest(http.MethodGet, "/posts/999", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusNotFound)
	}
}
