// Package di provides dependency injection factories for creating application components.
package di

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"company_analyzer/internal/feature/companyanalysis/adapters/openrouter"
	"company_analyzer/internal/feature/companyanalysis/usecase"
	"company_analyzer/internal/platform/cache"
	"company_analyzer/internal/platform/config"
	infrahttp "company_analyzer/internal/platform/http"
)

// NewCompletionClient creates the OpenRouter client with its HTTP client.
// When a completion cache TTL is configured and Redis is available, the client is
// wrapped with a Redis cache.
func NewCompletionClient(cfg *config.Config, rdb *redis.Client) usecase.CompletionClient {
	httpClient := infrahttp.NewHTTPClient(cfg.UpstreamTimeout)
	client := openrouter.NewClient(openrouter.Config{
		APIKey:  cfg.OpenRouterAPIKey,
		BaseURL: cfg.OpenRouterBaseURL,
		Timeout: cfg.UpstreamTimeout,
		SiteURL: cfg.OpenRouterSiteURL,
	}, httpClient)

	if cfg.OpenRouterAPIKey == "" {
		slog.Warn("OPENROUTER_API_KEY is not set; analyses will fail until it is configured")
	}

	if cfg.CompletionCacheTTL > 0 && rdb != nil {
		return cache.NewCachingCompletionClient(rdb, cfg.CompletionCacheTTL, client, cache.DefaultNamespace)
	}
	return client
}
