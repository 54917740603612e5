// Package search provides web search context enrichment for article
// generation. It wraps the ValueSerp API and degrades gracefully: any
// failure yields an empty context instead of an error, so generation
// proceeds without enrichment.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Davidxap/ai-powered-blog-platform/internal/domain/entity"
	"github.com/Davidxap/ai-powered-blog-platform/internal/utils/text"
)

// ValueSerp fetches search context from the ValueSerp API.
type ValueSerp struct {
	httpClient      *http.Client
	config          *Config
	metricsRecorder MetricsRecorder
}

// NewValueSerp creates a ValueSerp client with the given configuration.
func NewValueSerp(cfg *Config) *ValueSerp {
	slog.Info("Initialized ValueSerp search client",
		slog.String("endpoint", cfg.Endpoint),
		slog.Int("result_limit", cfg.ResultLimit),
		slog.Bool("enabled", cfg.APIKey != ""))

	return &ValueSerp{
		httpClient:      &http.Client{Timeout: cfg.Timeout},
		config:          cfg,
		metricsRecorder: NewPrometheusMetrics(),
	}
}

// NewValueSerpWithMetrics creates a client with an explicit metrics recorder.
func NewValueSerpWithMetrics(cfg *Config, recorder MetricsRecorder) *ValueSerp {
	return &ValueSerp{
		httpClient:      &http.Client{Timeout: cfg.Timeout},
		config:          cfg,
		metricsRecorder: recorder,
	}
}

type searchResponse struct {
	AnswerBox struct {
		Answer  string `json:"answer"`
		Snippet string `json:"snippet"`
	} `json:"answer_box"`
	OrganicResults []struct {
		Link string `json:"link"`
	} `json:"organic_results"`
}

// Fetch queries the search API and distills the result into an overview and
// a handful of source URLs. It never returns an error: on any failure it logs
// a warning, records the failure, and returns an empty context.
func (v *ValueSerp) Fetch(ctx context.Context, keyword, language, country string) entity.SearchContext {
	if v.config.APIKey == "" {
		return entity.SearchContext{}
	}

	ctx, cancel := context.WithTimeout(ctx, v.config.Timeout)
	defer cancel()

	start := time.Now()
	resp, err := v.doSearch(ctx, keyword, language, country)
	v.metricsRecorder.RecordDuration(time.Since(start))
	if err != nil {
		slog.WarnContext(ctx, "search enrichment failed, continuing without context",
			slog.String("keyword", keyword),
			slog.String("error", err.Error()))
		return entity.SearchContext{}
	}

	return distill(resp)
}

func (v *ValueSerp) doSearch(ctx context.Context, keyword, language, country string) (*searchResponse, error) {
	params := url.Values{}
	params.Set("api_key", v.config.APIKey)
	params.Set("q", keyword)
	params.Set("hl", language)
	params.Set("gl", country)
	params.Set("num", strconv.Itoa(v.config.ResultLimit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		v.config.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		v.metricsRecorder.RecordFailure("request")
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		v.metricsRecorder.RecordFailure("request")
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		v.metricsRecorder.RecordFailure("status")
		return nil, fmt.Errorf("search api returned status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		v.metricsRecorder.RecordFailure("decode")
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &parsed, nil
}

// distill picks the overview in priority order (answer box answer, then
// answer box snippet, then empty) and collects links from the leading
// organic results. Only the first three results are considered; a result
// without a link shrinks the URL set rather than pulling in a later one.
func distill(resp *searchResponse) entity.SearchContext {
	var sc entity.SearchContext

	switch {
	case resp.AnswerBox.Answer != "":
		sc.Overview = resp.AnswerBox.Answer
	case resp.AnswerBox.Snippet != "":
		sc.Overview = resp.AnswerBox.Snippet
	}
	sc.Overview = text.TruncateRunes(sc.Overview, entity.MaxOverviewLength)

	leading := resp.OrganicResults
	if len(leading) > entity.MaxContextURLs {
		leading = leading[:entity.MaxContextURLs]
	}
	for _, result := range leading {
		if result.Link != "" {
			sc.URLs = append(sc.URLs, result.Link)
		}
	}
	return sc
}
