// Package cache provides caching decorators for outbound clients.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"company_analyzer/internal/feature/companyanalysis/domain/entity"
	"company_analyzer/internal/feature/companyanalysis/usecase"
)

// DefaultNamespace is the key prefix used when none is given.
const DefaultNamespace = "completion"

// CachingCompletionClient decorates a CompletionClient with Redis caching of raw
// completions, keyed by model and prompt.
type CachingCompletionClient struct {
	inner     usecase.CompletionClient
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingCompletionClientがCompletionClientを実装していることをコンパイル時に検証します。
var _ usecase.CompletionClient = (*CachingCompletionClient)(nil)

// NewCachingCompletionClient decorates a CompletionClient with Redis caching.
// If ttl is 0, it defaults to 1 hour. If namespace is empty, it uses "completion".
func NewCachingCompletionClient(rdb *redis.Client, ttl time.Duration, inner usecase.CompletionClient, namespace string) *CachingCompletionClient {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &CachingCompletionClient{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Complete returns a cached completion when present, otherwise calls the inner client.
func (c *CachingCompletionClient) Complete(ctx context.Context, model entity.ModelID, prompt string) (string, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Complete(ctx, model, prompt)
	}

	key := c.cacheKey(model, prompt)

	// 1) Check cache
	if s, err := c.rdb.Get(ctx, key).Result(); err == nil && s != "" {
		slog.Debug("completion cache hit", "model", model)
		return s, nil
	} else if err != nil && err != redis.Nil {
		slog.Warn("completion cache read failed", "error", err)
	}

	// 2) Fallback to upstream
	out, err := c.inner.Complete(ctx, model, prompt)
	if err != nil {
		return "", err
	}

	// 3) Store in cache (best effort)
	if out != "" {
		if err := c.rdb.Set(ctx, key, out, c.ttl).Err(); err != nil {
			slog.Warn("completion cache write failed", "error", err)
		}
	}

	return out, nil
}

// cacheKey generates a cache key for a specific model and prompt.
func (c *CachingCompletionClient) cacheKey(model entity.ModelID, prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return fmt.Sprintf("%s:%s:%s",
		c.namespace,
		safe(string(model)),
		hex.EncodeToString(sum[:]),
	)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
