package post

import (
	"net/http"

	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/pathutil"
	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/respond"
	postUC "github.com/Davidxap/ai-powered-blog-platform/internal/usecase/post"
)

type GetHandler struct{ Svc *postUC.Service }

// ServeHTTP returns a single post.
// @Summary      Get post
// @Description  Returns the post with the given ID, including the author's username and category IDs.
// @Tags         posts
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200 {object} DTO "Post detail"
// @Failure      400 {string} string "Bad request - invalid post ID"
// @Failure      404 {string} string "Not found - post does not exist"
// @Failure      500 {string} string "Internal server error"
// @Router       /posts/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/posts/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	found, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(*found))
}
