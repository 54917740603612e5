package post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/auth"
	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/pathutil"
	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/respond"
	postUC "github.com/Davidxap/ai-powered-blog-platform/internal/usecase/post"
)

type UpdateHandler struct{ Svc *postUC.Service }

// ServeHTTP updates a post.
// @Summary      Update post
// @Description  Replaces the title, body, and categories of an existing post. Only the author may update it.
// @Tags         posts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Post ID"
// @Param        post body object true "Updated post content"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - only the author can modify the post"
// @Failure      404 {string} string "Not found - post does not exist"
// @Router       /posts/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	authorID := auth.UserIDFromContext(r.Context())
	if authorID == 0 {
		respond.Error(w, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	id, err := pathutil.ExtractID(r.URL.Path, "/posts/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Title       string  `json:"title"`
		Body        string  `json:"body"`
		CategoryIDs []int64 `json:"categoryIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	err = h.Svc.Update(r.Context(), postUC.UpdateInput{
		ID:          id,
		AuthorID:    authorID,
		Title:       req.Title,
		Body:        req.Body,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
