// Package adapters provides repository implementations for the companyanalysis feature.
package adapters

import (
	"context"
	"sync"
	"time"

	"company_analyzer/internal/feature/companyanalysis/domain/entity"
	"company_analyzer/internal/feature/companyanalysis/usecase"
)

// historyMemory keeps one History per session in process memory.
// Callers always receive copies, so sessions never share mutable state.
type historyMemory struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*memorySession
}

type memorySession struct {
	history    *entity.History
	lastAccess time.Time
}

// Compile-time check to ensure historyMemory implements HistoryRepository.
var _ usecase.HistoryRepository = (*historyMemory)(nil)

// NewHistoryMemory creates an in-memory history store.
// Sessions idle for longer than ttl are dropped; a ttl of 0 keeps them until Delete.
func NewHistoryMemory(ttl time.Duration) *historyMemory {
	return &historyMemory{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*memorySession),
	}
}

// Load returns a copy of the session's history, or an empty one.
func (r *historyMemory) Load(ctx context.Context, sessionID string) (*entity.History, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok || r.expired(s) {
		return &entity.History{}, nil
	}
	s.lastAccess = r.now()
	return s.history.Clone(), nil
}

// Save replaces the session's history and evicts idle sessions.
func (r *historyMemory) Save(ctx context.Context, sessionID string, h *entity.History) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictExpired()
	r.sessions[sessionID] = &memorySession{history: h.Clone(), lastAccess: r.now()}
	return nil
}

// Delete drops the session's history.
func (r *historyMemory) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}

// Len returns the number of live sessions.
func (r *historyMemory) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictExpired()
	return len(r.sessions)
}

func (r *historyMemory) expired(s *memorySession) bool {
	return r.ttl > 0 && r.now().Sub(s.lastAccess) > r.ttl
}

// evictExpired must be called with mu held.
func (r *historyMemory) evictExpired() {
	if r.ttl <= 0 {
		return
	}
	for id, s := range r.sessions {
		if r.expired(s) {
			delete(r.sessions, id)
		}
	}
}
