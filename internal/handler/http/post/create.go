package post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Davidxap/ai-powered-blog-platform/internal/domain/entity"
	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/auth"
	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/respond"
	postUC "github.com/Davidxap/ai-powered-blog-platform/internal/usecase/post"
)

type CreateHandler struct{ Svc *postUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	authorID := auth.UserIDFromContext(r.Context())
	if authorID == 0 {
		respond.Error(w, http.StatusUnauthorized, errors.New("authentication required"))
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

	created, err := h.Svc.Create(r.Context(), postUC.CreateInput{
		AuthorID:    authorID,
		Title:       req.Title,
		Body:        req.Body,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]int64{"id": created.ID})
}

// statusFor maps use case errors to HTTP status codes.
func statusFor(err error) int {
	var ve *entity.ValidationError
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, postUC.ErrNotPostAuthor):
		return http.StatusForbidden
	case errors.Is(err, postUC.ErrUnknownCategory), errors.As(err, &ve):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
