package comment

import (
	"net/http"

	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/auth"
	commentUC "github.com/Davidxap/ai-powered-blog-platform/internal/usecase/comment"
)

// Register registers the comment HTTP handlers with the given mux.
// The wildcard patterns take precedence over the post subtree routes,
// so /posts/{id}/comments never reaches the post handlers.
func Register(mux *http.ServeMux, svc *commentUC.Service) {
	mux.Handle("GET    /posts/{id}/comments", ListHandler{svc})
	mux.Handle("POST   /posts/{id}/comments", auth.Authz(CreateHandler{svc}))
}
