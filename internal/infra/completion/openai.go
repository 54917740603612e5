// Package completion provides AI article completion implementations.
// It includes adapters for OpenAI and Claude (Anthropic) APIs. Each adapter
// makes exactly one remote call per invocation; retry policy stays with the
// caller.
package completion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Davidxap/ai-powered-blog-platform/internal/utils/text"
)

// ErrEmptyContent is returned when the provider answers successfully but the
// completion carries no usable text.
var ErrEmptyContent = errors.New("completion returned empty content")

// languageNames maps supported language codes to the names used in the
// system instruction.
var languageNames = map[string]string{
	"en": "English",
	"es": "Spanish",
}

// systemInstruction builds the writer persona for the given language code.
func systemInstruction(language string) string {
	name, ok := languageNames[language]
	if !ok {
		name = language
	}
	return fmt.Sprintf(
		"You are a professional %s content writer. Write the article ONLY in %s. "+
			"Respond with plain text without any markdown formatting.",
		name, name)
}

// OpenAI implements article completion using OpenAI's chat completion API.
type OpenAI struct {
	client *openai.Client
	config *Config
}

// NewOpenAI creates an OpenAI completer with the given configuration.
func NewOpenAI(cfg *Config) *OpenAI {
	slog.Info("Initialized OpenAI completer",
		slog.String("model", cfg.Model),
		slog.Int("max_tokens", cfg.MaxTokens))

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &OpenAI{
		client: openai.NewClientWithConfig(clientCfg),
		config: cfg,
	}
}

// Complete sends one chat completion request and returns the raw article
// text. A transport or API failure is wrapped and returned as-is; a
// successful response with no content yields ErrEmptyContent.
func (o *OpenAI) Complete(ctx context.Context, language, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	slog.InfoContext(ctx, "Starting article completion",
		slog.String("provider", "openai"),
		slog.String("model", o.config.Model),
		slog.Int("prompt_length", text.CountRunes(prompt)))

	start := time.Now()
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.config.Model,
		MaxTokens:   o.config.MaxTokens,
		Temperature: o.config.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction(language)},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "Article completion failed",
			slog.String("provider", "openai"),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyContent
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyContent
	}

	slog.InfoContext(ctx, "Article completion finished",
		slog.String("provider", "openai"),
		slog.Duration("duration", duration),
		slog.Int("content_length", text.CountRunes(content)))

	return content, nil
}
