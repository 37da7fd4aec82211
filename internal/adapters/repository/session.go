package repository

import (
	"context"
	"sync"

	"github.com/okian/faceoff/internal/domain/aggregate"
	"github.com/okian/faceoff/internal/domain/index"
	"github.com/okian/faceoff/internal/domain/model"
)

// defaultCacheSize bounds the aggregate memo cache.
const defaultCacheSize = 1024

// SessionStore implements Store with a single RWMutex-guarded snapshot.
// One roster is active per instance; the lock only defends against
// concurrent HTTP readers racing a roster replacement.
type SessionStore struct {
	mu     sync.RWMutex
	roster *model.Roster
	ix     *index.Index
	memo   *memoCache

	cacheSize int
}

// NewSessionStore creates an empty session store.
func NewSessionStore(opts ...Option) *SessionStore {
	s := &SessionStore{cacheSize: defaultCacheSize}
	for _, opt := range opts {
		opt(s)
	}
	s.memo = newMemoCache(s.cacheSize)
	return s
}

// Replace installs a new roster wholesale and invalidates all derived state.
func (s *SessionStore) Replace(_ context.Context, r *model.Roster) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roster = r
	if r == nil {
		s.ix = nil
	} else {
		s.ix = index.New(r.Players)
	}
	s.memo.reset()
}

// Roster returns the active roster snapshot.
func (s *SessionStore) Roster(_ context.Context) (*model.Roster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.roster == nil {
		return nil, ErrNoRoster
	}
	return s.roster, nil
}

// Version returns the active roster's version id.
func (s *SessionStore) Version(_ context.Context) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.roster == nil {
		return ""
	}
	return s.roster.Version
}

// Count returns the number of players on the active roster.
func (s *SessionStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.roster == nil {
		return 0
	}
	return len(s.roster.Players)
}

// Match runs a normalized prefix search over the active roster.
func (s *SessionStore) Match(_ context.Context, prefix string, limit int) ([]model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ix == nil {
		return nil, ErrNoRoster
	}
	return s.ix.Match(prefix, limit), nil
}

// Aggregate folds the selection against the active roster, memoized on the
// roster version plus the normalized selection. Aggregation is pure, so a
// cached group is indistinguishable from a recomputed one.
func (s *SessionStore) Aggregate(_ context.Context, label string, selection []string) (aggregate.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ix == nil {
		return aggregate.Group{}, ErrNoRoster
	}

	key := memoKey(s.roster.Version, label, selection)
	if g, ok := s.memo.get(key); ok {
		return g, nil
	}
	g := aggregate.Build(label, selection, s.ix)
	s.memo.put(key, g)
	return g, nil
}

// CacheStats reports memo cache hits and misses since startup.
func (s *SessionStore) CacheStats(_ context.Context) (hits, misses uint64) {
	return s.memo.stats()
}
