// Package generate provides the HTTP handler for AI article generation.
// The handler drives the generation pipeline and persists the result as a
// regular post owned by the caller.
package generate

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Davidxap/ai-powered-blog-platform/internal/domain/entity"
	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/auth"
	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/respond"
	"github.com/Davidxap/ai-powered-blog-platform/internal/infra/completion"
	"github.com/Davidxap/ai-powered-blog-platform/internal/observability/logging"
	generateUC "github.com/Davidxap/ai-powered-blog-platform/internal/usecase/generate"
	postUC "github.com/Davidxap/ai-powered-blog-platform/internal/usecase/post"
)

// Handler generates an article and stores it as a post. Generation and
// persistence are separate steps: a completion failure leaves no partial
// post behind.
type Handler struct {
	Generator generateUC.Service
	Posts     *postUC.Service
	Logger    *slog.Logger

	// DefaultCountry is used for search enrichment when the request does
	// not name a country.
	DefaultCountry string
}

type request struct {
	Keyword        string  `json:"keyword"`
	Language       string  `json:"language"`
	Tone           string  `json:"tone"`
	TargetAudience string  `json:"targetAudience"`
	MinWords       int     `json:"minWords"`
	MaxWords       int     `json:"maxWords"`
	Country        string  `json:"country"`
	CategoryIDs    []int64 `json:"categoryIds"`
}

type response struct {
	PostID int64  `json:"postId" example:"42"`
	Title  string `json:"title" example:"Understanding Kubernetes Operators"`
}

// ServeHTTP generates an article.
// @Summary      Generate article
// @Description  Generates a blog article for the given keyword using search enrichment and a completion model, then stores it as a post owned by the caller.
// @Tags         generation
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body request true "Generation parameters"
// @Success      201 {object} response "ID and title of the generated post"
// @Failure      400 {string} string "Bad request - invalid generation parameters"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      429 {string} string "Too many requests - generation rate limit exceeded" headers(Retry-After=integer)
// @Failure      502 {string} string "Bad gateway - completion provider failed"
// @Router       /generate [post]
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	authorID := auth.UserIDFromContext(ctx)
	if authorID == 0 {
		respond.Error(w, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Country == "" {
		req.Country = h.DefaultCountry
	}

	article, err := h.Generator.Generate(ctx, entity.GenerationRequest{
		Keyword:        req.Keyword,
		Language:       req.Language,
		Tone:           req.Tone,
		TargetAudience: req.TargetAudience,
		MinWords:       req.MinWords,
		MaxWords:       req.MaxWords,
		Country:        req.Country,
	})
	if err != nil {
		logger.Warn("article generation failed",
			"keyword", req.Keyword,
			"language", req.Language,
			"error", err.Error())
		respondGenerationError(w, err)
		return
	}

	created, err := h.Posts.Create(ctx, postUC.CreateInput{
		AuthorID:    authorID,
		Title:       article.Title,
		Body:        article.Body,
		CategoryIDs: req.CategoryIDs,
		Origin:      "generated",
	})
	if err != nil {
		logger.Error("failed to persist generated article",
			"keyword", req.Keyword,
			"title", article.Title,
			"error", err.Error())
		respond.SafeError(w, persistStatus(err), err)
		return
	}

	logger.Info("article generated",
		"post_id", created.ID,
		"keyword", req.Keyword,
		"language", req.Language,
		"duration_ms", time.Since(startTime).Milliseconds())

	respond.JSON(w, http.StatusCreated, response{PostID: created.ID, Title: article.Title})
}

// respondGenerationError maps pipeline errors. Completion provider
// failures surface as 502 so callers can tell upstream trouble from bad
// input. Provider error details never reach the response body.
func respondGenerationError(w http.ResponseWriter, err error) {
	var ve *entity.ValidationError
	switch {
	case errors.As(err, &ve):
		respond.SafeError(w, http.StatusBadRequest, err)
	case errors.Is(err, completion.ErrEmptyContent):
		respond.Error(w, http.StatusBadGateway, errors.New("completion provider returned empty content"))
	default:
		respond.Error(w, http.StatusBadGateway, errors.New("completion provider failed"))
	}
}

func persistStatus(err error) int {
	var ve *entity.ValidationError
	if errors.As(err, &ve) || errors.Is(err, postUC.ErrUnknownCategory) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Register registers the generation handler with the given mux, protected
// by authentication and the shared generation rate limiter.
func Register(mux *http.ServeMux, handler Handler, limit func(http.Handler) http.Handler) {
	mux.Handle("POST   /generate", limit(auth.Authz(handler)))
}
