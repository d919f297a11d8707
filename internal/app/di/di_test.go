package di

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"company_analyzer/internal/feature/companyanalysis/adapters/openrouter"
	"company_analyzer/internal/platform/cache"
	"company_analyzer/internal/platform/config"
	"company_analyzer/internal/platform/session"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		mr.Close()
	})
	return rdb
}

func TestNewCompletionClient(t *testing.T) {
	rdb := newTestRedis(t)

	tests := []struct {
		name     string
		cacheTTL time.Duration
		rdb      *redis.Client
		want     any
	}{
		{"plain client without cache ttl", 0, rdb, &openrouter.Client{}},
		{"plain client without redis", time.Minute, nil, &openrouter.Client{}},
		{"cached client", time.Minute, rdb, &cache.CachingCompletionClient{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.CompletionCacheTTL = tt.cacheTTL

			got := NewCompletionClient(cfg, tt.rdb)
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestNewHistoryRepository(t *testing.T) {
	rdb := newTestRedis(t)

	assert.IsType(t, &session.HistoryRedis{}, NewHistoryRepository(rdb, time.Hour))
	assert.NotNil(t, NewHistoryRepository(nil, time.Hour))
	_, isRedis := NewHistoryRepository(nil, time.Hour).(*session.HistoryRedis)
	assert.False(t, isRedis)
}

func TestNewSessionGenerator(t *testing.T) {
	cfg := config.New()

	t.Run("configured secret", func(t *testing.T) {
		cfg.SessionSecret = "configured"
		a := NewSessionGenerator(cfg)
		b := NewSessionGenerator(cfg)

		token, err := a.GenerateToken("s1")
		require.NoError(t, err)
		id, err := b.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, "s1", id)
	})

	t.Run("random secret", func(t *testing.T) {
		cfg.SessionSecret = ""
		a := NewSessionGenerator(cfg)
		b := NewSessionGenerator(cfg)

		token, err := a.GenerateToken("s1")
		require.NoError(t, err)
		_, err = b.ParseToken(token)
		assert.Error(t, err)
	})
}
