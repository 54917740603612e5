// Package generate implements the AI article generation pipeline: search
// context enrichment, prompt building, completion, and the title/body split.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Davidxap/ai-powered-blog-platform/internal/domain/entity"
	"github.com/Davidxap/ai-powered-blog-platform/internal/observability/metrics"
	"github.com/Davidxap/ai-powered-blog-platform/internal/observability/tracing"
	"github.com/Davidxap/ai-powered-blog-platform/internal/utils/text"
)

// ContextFetcher is an interface for web search context enrichment.
// Implementations must absorb their own failures and return an empty
// context instead of an error.
type ContextFetcher interface {
	Fetch(ctx context.Context, keyword, language, country string) entity.SearchContext
}

// Completer is an interface for AI article completion.
type Completer interface {
	Complete(ctx context.Context, language, prompt string) (string, error)
}

// Service provides the article generation use case. It orchestrates one
// search call and one completion call per invocation and never persists.
type Service struct {
	Fetcher   ContextFetcher
	Completer Completer
}

// NewService creates a new generate Service with the provided dependencies.
func NewService(fetcher ContextFetcher, completer Completer) Service {
	return Service{
		Fetcher:   fetcher,
		Completer: completer,
	}
}

// Generate runs the full pipeline for one request. The request is validated
// first; completion errors propagate unchanged so callers can distinguish
// transport failures from empty content.
func (s Service) Generate(ctx context.Context, req entity.GenerationRequest) (*entity.GeneratedArticle, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.ApplyDefaults()

	ctx, span := tracing.GetTracer().Start(ctx, "generate.article")
	defer span.End()
	span.SetAttributes(
		attribute.String("generation.keyword", req.Keyword),
		attribute.String("generation.language", req.Language),
	)

	start := time.Now()
	searchCtx := s.Fetcher.Fetch(ctx, req.Keyword, req.Language, req.Country)

	prompt := BuildPrompt(req, searchCtx)

	raw, err := s.Completer.Complete(ctx, req.Language, prompt)
	if err != nil {
		metrics.RecordGenerationAttempt("error")
		return nil, fmt.Errorf("Generate: %w", err)
	}

	article := split(raw, req.Keyword)

	metrics.RecordGenerationAttempt("success")
	metrics.RecordGenerationDuration(time.Since(start))

	slog.InfoContext(ctx, "Article generated",
		slog.String("keyword", req.Keyword),
		slog.String("language", req.Language),
		slog.Int("title_length", text.CountRunes(article.Title)),
		slog.Int("word_count", text.CountWords(article.Body)),
		slog.Duration("duration", time.Since(start)))

	return article, nil
}

// split extracts the title (first line) and body (rest) from raw completion
// output. Output without a line break falls back to the keyword as title
// and the whole output as body.
func split(raw, keyword string) *entity.GeneratedArticle {
	before, after, found := strings.Cut(raw, "\n")
	if !found {
		return &entity.GeneratedArticle{
			Title: keyword,
			Body:  strings.TrimSpace(raw),
		}
	}
	return &entity.GeneratedArticle{
		Title: strings.TrimSpace(before),
		Body:  strings.TrimSpace(after),
	}
}
