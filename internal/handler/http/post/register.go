package post

import (
	"log/slog"
	"net/http"

	"github.com/Davidxap/ai-powered-blog-platform/internal/common/pagination"
	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/auth"
	postUC "github.com/Davidxap/ai-powered-blog-platform/internal/usecase/post"
)

// Register registers all post-related HTTP handlers with the given mux.
// Reading posts is public; creating, updating, and deleting require
// authentication via the auth middleware.
func Register(mux *http.ServeMux, svc *postUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /posts", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET    /posts/", GetHandler{svc})

	mux.Handle("POST   /posts", auth.Authz(CreateHandler{svc}))
	mux.Handle("PUT    /posts/", auth.Authz(UpdateHandler{svc}))
	mux.Handle("DELETE /posts/", auth.Authz(DeleteHandler{svc}))
}
