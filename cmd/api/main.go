package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Davidxap/ai-powered-blog-platform/internal/common/pagination"
	appconfig "github.com/Davidxap/ai-powered-blog-platform/internal/config"
	"github.com/Davidxap/ai-powered-blog-platform/internal/domain/entity"
	pgRepo "github.com/Davidxap/ai-powered-blog-platform/internal/infra/adapter/persistence/postgres"
	"github.com/Davidxap/ai-powered-blog-platform/internal/infra/completion"
	"github.com/Davidxap/ai-powered-blog-platform/internal/infra/db"
	"github.com/Davidxap/ai-powered-blog-platform/internal/infra/search"
	"github.com/Davidxap/ai-powered-blog-platform/internal/observability/logging"
	"github.com/Davidxap/ai-powered-blog-platform/internal/observability/metrics"
	pkgconfig "github.com/Davidxap/ai-powered-blog-platform/pkg/config"

	commentUC "github.com/Davidxap/ai-powered-blog-platform/internal/usecase/comment"
	dashUC "github.com/Davidxap/ai-powered-blog-platform/internal/usecase/dashboard"
	generateUC "github.com/Davidxap/ai-powered-blog-platform/internal/usecase/generate"
	postUC "github.com/Davidxap/ai-powered-blog-platform/internal/usecase/post"
	userUC "github.com/Davidxap/ai-powered-blog-platform/internal/usecase/user"

	hhttp "github.com/Davidxap/ai-powered-blog-platform/internal/handler/http"
	hauth "github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/auth"
	hcategory "github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/category"
	hcomment "github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/comment"
	hdashboard "github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/dashboard"
	hgenerate "github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/generate"
	hpost "github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/post"
	"github.com/Davidxap/ai-powered-blog-platform/internal/handler/http/requestid"
	"github.com/Davidxap/ai-powered-blog-platform/internal/observability/tracing"
)

// @title           AI-Powered Blog Platform API
// @version         1.0
// @description     Multi-user blogging platform with AI article generation.
// @description     Manages users, posts, categories, and comments, and generates
// @description     articles from a keyword using search enrichment and a completion model.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT authentication. Supply the header as "Bearer {token}".

func main() {
	logger := initLogger()
	securityCfg := loadSecurityConfig(logger)
	validateJWTSecret(logger, securityCfg)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	go reportPoolStats(database)

	handler := setupServer(logger, database, securityCfg, getVersion())
	runServer(logger, handler, getVersion())
}

// reportPoolStats publishes connection pool gauges every 15 seconds for the
// lifetime of the process.
func reportPoolStats(database *sql.DB) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for range ticker.C {
		stats := database.Stats()
		metrics.UpdateDBConnectionStats(stats.InUse, stats.Idle)
	}
}

// initLogger initializes the structured logger and installs it as default.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

func loadSecurityConfig(logger *slog.Logger) *appconfig.SecurityConfig {
	path := os.Getenv("SECURITY_CONFIG_PATH")
	if path == "" {
		return appconfig.DefaultSecurityConfig()
	}
	cfg, err := appconfig.LoadSecurityConfig(path)
	if err != nil {
		logger.Error("failed to load security configuration",
			slog.String("path", path),
			slog.Any("error", err))
		os.Exit(1)
	}
	return cfg
}

// validateJWTSecret refuses to start with a missing or weak signing secret.
func validateJWTSecret(logger *slog.Logger, cfg *appconfig.SecurityConfig) {
	secret := os.Getenv(cfg.GetJWTSecretEnv())
	if secret == "" {
		logger.Error("JWT secret must be set", slog.String("env", cfg.GetJWTSecretEnv()))
		os.Exit(1)
	}
	if len(secret) < 32 {
		logger.Error("JWT secret must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
	weakSecrets := []string{"secret", "password", "test", "admin", "default"}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			logger.Error("JWT secret must not be a common weak value")
			os.Exit(1)
		}
	}
}

// initDatabase opens the connection pool, runs migrations, and seeds the
// default categories.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := pgRepo.NewCategoryRepo(database).EnsureDefaults(ctx, entity.DefaultCategoryNames); err != nil {
		logger.Error("failed to seed default categories", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// newCompleter picks the completion provider from COMPLETION_PROVIDER:
// "openai" (default), "claude", or "noop". A missing API key falls back to
// the NoOp completer so the rest of the platform still runs.
func newCompleter(logger *slog.Logger) (generateUC.Completer, bool) {
	provider := pkgconfig.GetEnvString("COMPLETION_PROVIDER", "openai")

	switch provider {
	case "noop":
		logger.Warn("completion provider: noop (placeholder articles only)")
		return completion.NewNoOp(), false
	case "claude":
		cfg, err := completion.LoadConfig("ANTHROPIC_API_KEY")
		if err != nil || cfg.APIKey == "" {
			logger.Warn("claude not configured, falling back to noop completer", slog.Any("error", err))
			return completion.NewNoOp(), false
		}
		logger.Info("completion provider: claude", slog.String("model", cfg.Model))
		return completion.NewClaude(cfg), true
	default:
		cfg, err := completion.LoadConfig("OPENAI_API_KEY")
		if err != nil || cfg.APIKey == "" {
			logger.Warn("openai not configured, falling back to noop completer", slog.Any("error", err))
			return completion.NewNoOp(), false
		}
		logger.Info("completion provider: openai", slog.String("model", cfg.Model))
		return completion.NewOpenAI(cfg), true
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

// setupServer wires repositories, services, and handlers into one mux.
func setupServer(logger *slog.Logger, database *sql.DB, securityCfg *appconfig.SecurityConfig, version string) http.Handler {
	userRepo := pgRepo.NewUserRepo(database)
	postRepo := pgRepo.NewPostRepo(database)
	categoryRepo := pgRepo.NewCategoryRepo(database)
	commentRepo := pgRepo.NewCommentRepo(database)

	userSvc := &userUC.Service{Repo: userRepo, Policy: securityCfg}
	postSvc := &postUC.Service{Posts: postRepo, Categories: categoryRepo}
	commentSvc := &commentUC.Service{Comments: commentRepo, Posts: postRepo}
	dashSvc := &dashUC.Service{Posts: postRepo, Comments: commentRepo}

	completer, completionConfigured := newCompleter(logger)
	generateSvc := generateUC.NewService(newFetcher(logger), completer)

	paginationCfg := pagination.LoadFromEnv()
	jwtExpiry := time.Duration(securityCfg.GetJWTExpiryHours()) * time.Hour
	hauth.SetSecretEnv(securityCfg.GetJWTSecretEnv())

	generationLimiter := hhttp.NewGenerationLimiter(
		pkgconfig.GetEnvFloat("GENERATION_RATE_PER_MINUTE", 2),
		pkgconfig.GetEnvInt("GENERATION_BURST", 3),
	)

	mux := http.NewServeMux()

	mux.Handle("POST   /auth/register", hauth.RegisterHandler{Svc: userSvc})
	mux.Handle("POST   /auth/token", hauth.TokenHandler(userSvc, jwtExpiry))

	hpost.Register(mux, postSvc, paginationCfg, logger)
	hcomment.Register(mux, commentSvc)
	hcategory.Register(mux, categoryRepo)
	hdashboard.Register(mux, dashSvc)
	hgenerate.Register(mux, hgenerate.Handler{
		Generator:      generateSvc,
		Posts:          postSvc,
		Logger:         logger,
		DefaultCountry: pkgconfig.GetEnvString("DEFAULT_COUNTRY", "us"),
	}, generationLimiter.Middleware)

	mux.Handle("GET    /health", &hhttp.HealthHandler{
		DB:                   database,
		Version:              version,
		CompletionConfigured: completionConfigured,
	})
	mux.Handle("GET    /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET    /live", &hhttp.LiveHandler{})
	mux.Handle("GET    /metrics", hhttp.MetricsHandler())

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the mux. Order, outermost first: request ID,
// tracing, metrics, logging, panic recovery, body size limit.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB
	chain = hhttp.Recover(logger)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.MetricsMiddleware(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := pkgconfig.GetEnvString("HTTP_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
