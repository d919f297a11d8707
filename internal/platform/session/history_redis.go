// Package session stores per-session analysis history in Redis.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"company_analyzer/internal/feature/companyanalysis/domain/entity"
	"company_analyzer/internal/feature/companyanalysis/usecase"
)

// DefaultTTL is used when a non-positive TTL is given.
const DefaultTTL = 24 * time.Hour

// HistoryRedis implements usecase.HistoryRepository using Redis.
// Each session's history is stored as one JSON value whose TTL is refreshed on save.
type HistoryRedis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// HistoryRedisがHistoryRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.HistoryRepository = (*HistoryRedis)(nil)

// NewHistoryRedis creates a new HistoryRedis instance.
func NewHistoryRedis(client *redis.Client, prefix string, ttl time.Duration) *HistoryRedis {
	if prefix == "" {
		prefix = "history"
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &HistoryRedis{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// historyKey returns the Redis key for a session's history.
func (r *HistoryRedis) historyKey(sessionID string) string {
	return fmt.Sprintf("%s:%s", r.prefix, sessionID)
}

// Load retrieves a session's history. A session without history yields an empty one.
func (r *HistoryRedis) Load(ctx context.Context, sessionID string) (*entity.History, error) {
	data, err := r.client.Get(ctx, r.historyKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &entity.History{}, nil
		}
		return nil, err
	}

	var h entity.History
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("failed to unmarshal history: %w", err)
	}

	return &h, nil
}

// Save persists a session's history and extends its lifetime.
func (r *HistoryRedis) Save(ctx context.Context, sessionID string, h *entity.History) error {
	data, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	return r.client.Set(ctx, r.historyKey(sessionID), data, r.ttl).Err()
}

// Delete removes a session's history.
func (r *HistoryRedis) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, r.historyKey(sessionID)).Err()
}
