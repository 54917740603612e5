// Package category provides the HTTP handler for listing categories.
package category

import (
	"net/http"

	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/respond"
	"github.com/Davidxap/ai-powered-blog-platform/internal/repository"
)

// DTO represents the JSON structure for category data transfer.
type DTO struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"Technology"`
}

type ListHandler struct{ Repo repository.CategoryRepository }

// ServeHTTP lists all categories.
// @Summary      List categories
// @Description  Returns every category ordered by name.
// @Tags         categories
// @Produce      json
// @Success      200 {array} DTO "Category list"
// @Failure      500 {string} string "Internal server error"
// @Router       /categories [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Repo.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, DTO{ID: c.ID, Name: c.Name})
	}

	respond.JSON(w, http.StatusOK, dtos)
}

// Register registers the category HTTP handlers with the given mux.
func Register(mux *http.ServeMux, repo repository.CategoryRepository) {
	mux.Handle("GET    /categories", ListHandler{repo})
}
