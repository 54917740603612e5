package comment

import (
	"net/http"

	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/pathutil"
	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/respond"
	commentUC "github.com/Davidxap/ai-powered-blog-platform/internal/usecase/comment"
)

type ListHandler struct{ Svc *commentUC.Service }

// ServeHTTP lists the comments on a post.
// @Summary      List comments
// @Description  Returns all comments on the given post in chronological order.
// @Tags         comments
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200 {array} DTO "Comment list"
// @Failure      400 {string} string "Bad request - invalid post ID"
// @Failure      404 {string} string "Not found - post does not exist"
// @Failure      500 {string} string "Internal server error"
// @Router       /posts/{id}/comments [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	postID, err := pathutil.ExtractIDBetween(r.URL.Path, "/posts/", "/comments")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	comments, err := h.Svc.ListByPost(r.Context(), postID)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	dtos := make([]DTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, DTO{
			ID:        c.Comment.ID,
			PostID:    c.Comment.PostID,
			Author:    c.AuthorUsername,
			Body:      c.Comment.Body,
			CreatedAt: c.Comment.CreatedAt,
		})
	}

	respond.JSON(w, http.StatusOK, dtos)
}
