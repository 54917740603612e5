package post

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Davidxap/ai-powered-blog-platform/internal/common/pagination"
	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/respond"
	"github.com/Davidxap/ai-powered-blog-platform/internal/observability/logging"
	"github.com/Davidxap/ai-powered-blog-platform/internal/repository"
	postUC "github.com/Davidxap/ai-powered-blog-platform/internal/usecase/post"
)

type ListHandler struct {
	Svc           *postUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP lists posts, newest first.
// @Summary      List posts
// @Description  Returns posts ordered by creation time descending. Supports pagination and an optional category filter.
// @Tags         posts
// @Produce      json
// @Param        page      query  int     false  "Page number (1-based)" default(1) minimum(1)
// @Param        limit     query  int     false  "Items per page" default(20) minimum(1) maximum(100)
// @Param        category  query  string  false  "Filter by category name"
// @Success      200 {object} pagination.Response[DTO] "Paginated post list"
// @Failure      400 {string} string "Invalid query parameters"
// @Failure      500 {string} string "Internal server error"
// @Router       /posts [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters", "error", err.Error())
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	category := r.URL.Query().Get("category")

	var (
		items []repository.PostWithAuthor
		total int64
	)
	if category != "" {
		// Category totals are not tracked; metadata reflects the returned page.
		items, err = h.Svc.ListByCategory(ctx, category, params.Offset(), params.Limit)
		total = int64(len(items))
	} else {
		items, total, err = h.Svc.List(ctx, params.Offset(), params.Limit)
	}
	if err != nil {
		logger.Error("failed to list posts",
			"error", err.Error(),
			"page", params.Page,
			"limit", params.Limit,
			"category", category)
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toDTO(item))
	}

	logger.Info("post list served",
		"page", params.Page,
		"limit", params.Limit,
		"category", category,
		"returned_count", len(dtos),
		"duration_ms", time.Since(startTime).Milliseconds())

	respond.JSON(w, http.StatusOK, pagination.NewResponse(dtos, pagination.NewMetadata(params, total)))
}
