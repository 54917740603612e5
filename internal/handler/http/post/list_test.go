package post_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Davidxap/ai-powered-blog-platform/internal/common/pagination"
	"github.com/Davidxap/ai-powered-blog-platform/internal/domain/entity"
	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/post"
	postUC "github.com/Davidxap/ai-powered-blog-platform/internal/usecase/post"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newListHandler(repo *stubPostRepo) post.ListHandler {
	return post.ListHandler{
		Svc:           &postUC.Service{Posts: repo, Categories: stubCategoryRepo{}},
		PaginationCfg: pagination.DefaultConfig(),
		Logger:        discardLogger(),
	}
}

func TestListHandler_Success(t *testing.T) {
	now := time.Now()
	repo := newStubPostRepo()
	repo.add(&entity.Post{ID: 1, AuthorID: 7, Title: "First", Body: "Body", CreatedAt: now, CategoryIDs: []int64{1}}, "alice")
	repo.add(&entity.Post{ID: 2, AuthorID: 8, Title: "Second", Body: "Body", CreatedAt: now, CategoryIDs: []int64{2}}, "bob")

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	rr := httptest.NewRecorder()
	newListHandler(repo).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var resp pagination.Response[post.DTO]
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Errorf("len(Data) = %d, want 2", len(resp.Data))
	}
	if resp.Pagination.Total != 2 {
		t.Errorf("Total = %d, want 2", resp.Pagination.Total)
	}
	if resp.Pagination.Page != 1 || resp.Pagination.Limit != 20 {
		t.Errorf("defaults not applied: page=%d limit=%d", resp.Pagination.Page, resp.Pagination.Limit)
	}
}

func TestListHandler_EmptyResult(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	rr := httptest.NewRecorder()
	newListHandler(newStubPostRepo()).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp pagination.Response[post.DTO]
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data == nil {
		t.Error("Data should be an empty array, not null")
	}
	if resp.Pagination.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", resp.Pagination.TotalPages)
	}
}

func TestListHandler_InvalidPagination(t *testing.T) {
	tests := []string{"page=0", "page=abc", "limit=0", "limit=101"}
	for _, query := range tests {
		t.Run(query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/posts?"+query, nil)
			rr := httptest.NewRecorder()
			newListHandler(newStubPostRepo()).ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestListHandler_RepositoryError(t *testing.T) {
	repo := newStubPostRepo()
	repo.listErr = errors.New("database connection error")

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	rr := httptest.NewRecorder()
	newListHandler(repo).ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}
