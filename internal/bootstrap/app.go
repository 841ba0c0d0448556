package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"prism-backend/internal/llm"
	"prism-backend/internal/llm/gemini"
	openai "prism-backend/internal/llm/openai"
	"prism-backend/internal/portfolio"
	"prism-backend/internal/services/health"
	"prism-backend/internal/sessions"
	"prism-backend/internal/shared/config"
	"prism-backend/internal/shared/server"
	"prism-backend/internal/shared/server/middleware"
	"prism-backend/internal/shared/telemetry"
	"prism-backend/internal/ui"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	Sessions         sessions.Repo
	LLM              llm.Client
	PortfolioService *portfolio.Service
	PortfolioHandler *portfolio.Handler
	GenerateLimiter  *middleware.RateLimiter
	Health           *health.Service
}

// Build prepares dependencies and the router. A missing credential is not an
// error: the app starts and generation reports the missing key.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	llmClient, err := buildLLM(ctx, cfg)
	if err != nil {
		return nil, err
	}

	repo := sessions.NewMemoryRepo(cfg.SessionTTL)
	svc := &portfolio.Service{
		Sessions:       repo,
		LLM:            llmClient,
		APIKeySet:      cfg.APIKey() != "",
		CredentialEnv:  cfg.APIKeyEnv(),
		MaxResumeChars: cfg.MaxResumeChars,
	}

	limiter := middleware.NewRateLimiter(middleware.RateLimitRule{
		PerMinute: cfg.GenerateRatePerMin,
		Burst:     cfg.GenerateBurst,
	}, nil)

	app := &App{
		Config:           cfg,
		Sessions:         repo,
		LLM:              llmClient,
		PortfolioService: svc,
		PortfolioHandler: portfolio.NewHandler(svc, middleware.RateLimit(limiter)),
		GenerateLimiter:  limiter,
		Health:           health.NewService(cfg.LLMProvider, cfg.LLMModel, svc.APIKeySet),
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:           cfg,
		Health:           app.Health,
		PortfolioHandler: app.PortfolioHandler,
		UIHandler:        ui.NewHandler(svc, server.APIBase),
	})

	return app, nil
}

func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	key := cfg.APIKey()
	if key == "" {
		telemetry.Info("bootstrap.generation_disabled", map[string]any{
			"provider": cfg.LLMProvider,
			"env_var":  cfg.APIKeyEnv(),
		})
		return llm.PlaceholderClient{}, nil
	}

	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		client, err := openai.NewClient(key, cfg.LLMModel, cfg.LLMTimeout)
		if err != nil {
			return nil, fmt.Errorf("openai client: %w", err)
		}
		return client, nil
	default:
		client, err := gemini.NewClient(ctx, key, cfg.LLMModel, cfg.LLMTimeout)
		if err != nil {
			return nil, fmt.Errorf("gemini client: %w", err)
		}
		return client, nil
	}
}
