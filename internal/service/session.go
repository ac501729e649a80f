package service

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"dmsanalytics/internal/model"
)

// SessionStore keeps one snapshot per session id. The first lookup of a session loads
// its snapshot; later lookups reuse it until it expires, is evicted, or is refreshed.
// Concurrent first lookups of the same session share a single load.
type SessionStore struct {
	cache   *expirable.LRU[string, *model.Snapshot]
	loader  SnapshotLoader
	metrics *Metrics
	group   singleflight.Group
}

// NewSessionStore creates a store holding at most size sessions, each kept for ttl.
func NewSessionStore(loader SnapshotLoader, metrics *Metrics, size int, ttl time.Duration) *SessionStore {
	if size <= 0 {
		size = 1
	}
	return &SessionStore{
		cache:   expirable.NewLRU[string, *model.Snapshot](size, nil, ttl),
		loader:  loader,
		metrics: metrics,
	}
}

// Snapshot returns the snapshot of session id, loading it on first use.
func (s *SessionStore) Snapshot(ctx context.Context, id string) *model.Snapshot {
	if snap, ok := s.cache.Get(id); ok {
		s.metrics.sessionCache.WithLabelValues("hit").Inc()
		return snap
	}
	s.metrics.sessionCache.WithLabelValues("miss").Inc()
	return s.load(ctx, id)
}

// Refresh discards the snapshot of session id and loads a new one.
func (s *SessionStore) Refresh(ctx context.Context, id string) *model.Snapshot {
	s.cache.Remove(id)
	s.metrics.sessionCache.WithLabelValues("refresh").Inc()
	return s.load(ctx, id)
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	return s.cache.Len()
}

func (s *SessionStore) load(ctx context.Context, id string) *model.Snapshot {
	v, _, _ := s.group.Do(id, func() (any, error) {
		snap := s.loader.Load(context.WithoutCancel(ctx))
		s.cache.Add(id, snap)
		return snap, nil
	})
	return v.(*model.Snapshot)
}
