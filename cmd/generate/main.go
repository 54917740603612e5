// Package main provides a CLI command for one-shot article generation.
// Usage: blog-generate "keyword" [--language en] [--output json]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Davidxap/ai-powered-blog-platform/internal/domain/entity"
	"github.com/Davidxap/ai-powered-blog-platform/internal/infra/completion"
	"github.com/Davidxap/ai-powered-blog-platform/internal/infra/search"
	generateUC "github.com/Davidxap/ai-powered-blog-platform/internal/usecase/generate"
	"github.com/Davidxap/ai-powered-blog-platform/internal/utils/text"
	pkgconfig "github.com/Davidxap/ai-powered-blog-platform/pkg/config"
)

// ArticleOutput represents the JSON output format for generated articles.
type ArticleOutput struct {
	Keyword   string `json:"keyword"`
	Language  string `json:"language"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	WordCount int    `json:"word_count"`
}

func main() {
	var (
		language     string
		tone         string
		audience     string
		country      string
		minWords     int
		maxWords     int
		outputFormat string
	)

	flag.StringVar(&language, "language", "en", "Article language: en or es")
	flag.StringVar(&tone, "tone", "", "Writing tone (default: professional, informative)")
	flag.StringVar(&audience, "audience", "", "Target audience (default: general)")
	flag.StringVar(&country, "country", "", "Search country code (default: us)")
	flag.IntVar(&minWords, "min-words", 800, "Minimum article length in words")
	flag.IntVar(&maxWords, "max-words", 1500, "Maximum article length in words")
	flag.StringVar(&outputFormat, "output", "text", "Output format: text or json")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: Keyword is required")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage: blog-generate \"keyword\" [--language en] [--min-words N] [--max-words N] [--output json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Examples:")
		fmt.Fprintln(os.Stderr, "  blog-generate \"kubernetes operators\"")
		fmt.Fprintln(os.Stderr, "  blog-generate \"recetas veganas\" --language es --country es")
		fmt.Fprintln(os.Stderr, "  blog-generate \"home automation\" --tone casual --output json")
		os.Exit(1)
	}
	keyword := args[0]
	if country == "" {
		country = pkgconfig.GetEnvString("DEFAULT_COUNTRY", "us")
	}

	logger := initLogger()

	svc := generateUC.NewService(newFetcher(logger), newCompleter(logger))

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	logger.Info("Generating article",
		slog.String("keyword", keyword),
		slog.String("language", language))

	article, err := svc.Generate(ctx, entity.GenerationRequest{
		Keyword:        keyword,
		Language:       language,
		Tone:           tone,
		TargetAudience: audience,
		MinWords:       minWords,
		MaxWords:       maxWords,
		Country:        country,
	})
	if err != nil {
		logger.Error("generation failed", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: Generation failed: %v\n", err)
		os.Exit(1)
	}

	if outputFormat == "json" {
		outputJSON(keyword, language, article)
	} else {
		outputText(article)
	}
}

func newFetcher(logger *slog.Logger) generateUC.ContextFetcher {
	cfg, err := search.LoadConfig()
	if err != nil {
		logger.Warn("search enrichment not configured, generating without context", slog.Any("error", err))
		cfg = &search.Config{}
	}
	return search.NewValueSerp(cfg)
}

func newCompleter(logger *slog.Logger) generateUC.Completer {
	provider := pkgconfig.GetEnvString("COMPLETION_PROVIDER", "openai")

	switch provider {
	case "noop":
		return completion.NewNoOp()
	case "claude":
		cfg, err := completion.LoadConfig("ANTHROPIC_API_KEY")
		if err != nil || cfg.APIKey == "" {
			fmt.Fprintln(os.Stderr, "Error: ANTHROPIC_API_KEY must be set for the claude provider")
			os.Exit(1)
		}
		return completion.NewClaude(cfg)
	default:
		cfg, err := completion.LoadConfig("OPENAI_API_KEY")
		if err != nil || cfg.APIKey == "" {
			fmt.Fprintln(os.Stderr, "Error: OPENAI_API_KEY must be set for the openai provider")
			os.Exit(1)
		}
		return completion.NewOpenAI(cfg)
	}
}

// outputText prints the article in human-readable form.
func outputText(article *entity.GeneratedArticle) {
	fmt.Printf("%s\n\n%s\n", article.Title, article.Body)
}

// outputJSON prints the article as indented JSON.
func outputJSON(keyword, language string, article *entity.GeneratedArticle) {
	output := ArticleOutput{
		Keyword:   keyword,
		Language:  language,
		Title:     article.Title,
		Body:      article.Body,
		WordCount: text.CountWords(article.Body),
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to encode JSON: %v\n", err)
		os.Exit(1)
	}
}

// initLogger initializes a structured logger writing to stderr so article
// output on stdout stays clean.
func initLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}
