package completion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/Davidxap/ai-powered-blog-platform/internal/utils/text"
)

// Claude implements article completion using Anthropic's Messages API.
type Claude struct {
	client anthropic.Client
	config *Config
}

// NewClaude creates a Claude completer with the given configuration.
func NewClaude(cfg *Config) *Claude {
	slog.Info("Initialized Claude completer",
		slog.String("model", cfg.Model),
		slog.Int("max_tokens", cfg.MaxTokens))

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &Claude{
		client: anthropic.NewClient(opts...),
		config: cfg,
	}
}

// Complete sends one message request and returns the raw article text.
func (c *Claude) Complete(ctx context.Context, language, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	slog.InfoContext(ctx, "Starting article completion",
		slog.String("provider", "claude"),
		slog.String("model", c.config.Model),
		slog.Int("prompt_length", text.CountRunes(prompt)))

	start := time.Now()
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.config.Model),
		MaxTokens:   int64(c.config.MaxTokens),
		Temperature: anthropic.Float(float64(c.config.Temperature)),
		System: []anthropic.TextBlockParam{
			{Text: systemInstruction(language)},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(prompt),
			),
		},
	})
	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "Article completion failed",
			slog.String("provider", "claude"),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("claude api error: %w", err)
	}

	if len(message.Content) == 0 {
		return "", ErrEmptyContent
	}
	content := strings.TrimSpace(message.Content[0].Text)
	if content == "" {
		return "", ErrEmptyContent
	}

	slog.InfoContext(ctx, "Article completion finished",
		slog.String("provider", "claude"),
		slog.Duration("duration", duration),
		slog.Int("content_length", text.CountRunes(content)))

	return content, nil
}
