// Package comment provides HTTP handlers for post comment endpoints.
package comment

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Davidxap/ai-powered-blog-platform/internal/domain/entity"
	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/auth"
	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/pathutil"
	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/respond"
	commentUC "github.com/Davidxap/ai-powered-blog-platform/internal/usecase/comment"
)

// DTO represents the JSON structure for comment data transfer.
type DTO struct {
	ID        int64     `json:"id" example:"1"`
	PostID    int64     `json:"postId" example:"1"`
	Author    string    `json:"author" example:"bob"`
	Body      string    `json:"body" example:"Great write-up, thanks!"`
	CreatedAt time.Time `json:"createdAt" example:"2026-08-01T10:00:00Z"`
}

type CreateHandler struct{ Svc *commentUC.Service }

// ServeHTTP adds a comment to a post.
// @Summary      Create comment
// @Description  Adds a comment to an existing post. The authenticated user becomes the comment author.
// @Tags         comments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Post ID"
// @Param        comment body object true "Comment body"
// @Success      201 {object} map[string]int64 "ID of the new comment"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - post does not exist"
// @Router       /posts/{id}/comments [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	authorID := auth.UserIDFromContext(r.Context())
	if authorID == 0 {
		respond.Error(w, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	postID, err := pathutil.ExtractIDBetween(r.URL.Path, "/posts/", "/comments")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Body string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	created, err := h.Svc.Create(r.Context(), commentUC.CreateInput{
		PostID:   postID,
		AuthorID: authorID,
		Body:     req.Body,
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]int64{"id": created.ID})
}

func statusFor(err error) int {
	var ve *entity.ValidationError
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &ve):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
