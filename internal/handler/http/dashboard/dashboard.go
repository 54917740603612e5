// Package dashboard provides the HTTP handler for the author dashboard.
package dashboard

import (
	"errors"
	"net/http"

	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/auth"
	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/respond"
	dashUC "github.com/Davidxap/ai-powered-blog-platform/internal/usecase/dashboard"
)

// DTO represents the JSON structure for dashboard statistics.
type DTO struct {
	PostCount      int64 `json:"postCount" example:"12"`
	CommentCount   int64 `json:"commentCount" example:"48"`
	CategoriesUsed int64 `json:"categoriesUsed" example:"4"`
}

type Handler struct{ Svc *dashUC.Service }

// ServeHTTP returns the authenticated author's statistics.
// @Summary      Author dashboard
// @Description  Returns the caller's post count, comments received across their posts, and distinct categories used.
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} DTO "Dashboard statistics"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "Internal server error"
// @Router       /dashboard [get]
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	authorID := auth.UserIDFromContext(r.Context())
	if authorID == 0 {
		respond.Error(w, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	stats, err := h.Svc.Stats(r.Context(), authorID)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, DTO{
		PostCount:      stats.PostCount,
		CommentCount:   stats.CommentCount,
		CategoriesUsed: stats.CategoriesUsed,
	})
}

// Register registers the dashboard handler with the given mux.
func Register(mux *http.ServeMux, svc *dashUC.Service) {
	mux.Handle("GET    /dashboard", auth.Authz(Handler{svc}))
}
