package post

import (
	"errors"
	"net/http"

	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/auth"
	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/pathutil"
	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/respond"
	postUC "github.com/Davidxap/ai-powered-blog-platform/internal/usecase/post"
)

type DeleteHandler struct{ Svc *postUC.Service }

// ServeHTTP deletes a post.
// @Summary      Delete post
// @Description  Removes a post together with its comments and category links. Only the author may delete it.
// @Tags         posts
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid post ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - only the author can delete the post"
// @Failure      404 {string} string "Not found - post does not exist"
// @Router       /posts/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Svc.Delete(r.Context(), id, authorID); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
