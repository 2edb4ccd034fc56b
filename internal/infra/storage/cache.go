package storage

import (
	"context"
	"time"

	"github.com/intervia/go-interview-api/internal/interview"
	"github.com/intervia/go-interview-api/internal/interview/session"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// DefaultSessionCacheTTL bounds how long a cached session may serve reads.
const DefaultSessionCacheTTL = 30 * time.Minute

// CachedSessionStore is a read-through decorator over a SessionStore.
// Active sessions are kept hot in the cache, terminal ones are evicted.
// Cache failures degrade to the backing store and never fail the request.
type CachedSessionStore struct {
	store SessionStore
	cache SessionCache
	ttl   time.Duration
}

// NewCachedSessionStore wraps the backing store with the session cache.
func NewCachedSessionStore(store SessionStore, cache SessionCache) *CachedSessionStore {
	return &CachedSessionStore{
		store: store,
		cache: cache,
		ttl:   DefaultSessionCacheTTL,
	}
}

var _ SessionStore = (*CachedSessionStore)(nil)

func (s *CachedSessionStore) SaveSession(ctx context.Context, sess *session.Session) error {
	if err := s.store.SaveSession(ctx, sess); err != nil {
		return err
	}
	s.refresh(ctx, sess)
	return nil
}

func (s *CachedSessionStore) GetSession(ctx context.Context, id string) (*session.Session, error) {
	sess, err := s.cache.GetCachedSession(ctx, id)
	if err == nil {
		return sess, nil
	}
	if !errors.Is(err, interview.ErrNotFound) {
		log.Warn().Err(err).Str("session_id", id).Msg("Session cache read failed")
	}

	sess, err = s.store.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	s.refresh(ctx, sess)
	return sess, nil
}

func (s *CachedSessionStore) UpdateSession(ctx context.Context, sess *session.Session) error {
	if err := s.store.UpdateSession(ctx, sess); err != nil {
		return err
	}
	s.refresh(ctx, sess)
	return nil
}

func (s *CachedSessionStore) ListSessionsByUser(ctx context.Context, userID string, status session.Status, limit int) ([]*session.Session, error) {
	return s.store.ListSessionsByUser(ctx, userID, status, limit)
}

func (s *CachedSessionStore) refresh(ctx context.Context, sess *session.Session) {
	if sess.Status != session.StatusActive {
		if err := s.cache.InvalidateSession(ctx, sess.ID); err != nil {
			log.Warn().Err(err).Str("session_id", sess.ID).Msg("Session cache invalidation failed")
		}
		return
	}
	if err := s.cache.CacheSession(ctx, sess, s.ttl); err != nil {
		log.Warn().Err(err).Str("session_id", sess.ID).Msg("Session cache write failed")
	}
}
