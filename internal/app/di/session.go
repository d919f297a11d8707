package di

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"company_analyzer/internal/feature/companyanalysis/adapters"
	"company_analyzer/internal/feature/companyanalysis/usecase"
	"company_analyzer/internal/platform/config"
	jwtmw "company_analyzer/internal/platform/jwt"
	"company_analyzer/internal/platform/session"
)

// NewHistoryRepository creates a HistoryRepository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to process memory.
func NewHistoryRepository(rdb *redis.Client, ttl time.Duration) usecase.HistoryRepository {
	if rdb != nil {
		return session.NewHistoryRedis(rdb, "history", ttl)
	}
	return adapters.NewHistoryMemory(ttl)
}

// NewSessionGenerator creates the signer for session cookies.
// Without a configured secret a random one is used, so sessions do not survive a restart.
func NewSessionGenerator(cfg *config.Config) jwtmw.Generator {
	secret := cfg.SessionSecret
	if secret == "" {
		slog.Warn("ANALYZER_SESSION_SECRET is not set; using a random secret. Set a strong secret in production.")
		secret = uuid.NewString() + uuid.NewString()
	}
	return jwtmw.NewGenerator(secret, cfg.SessionTTL)
}
