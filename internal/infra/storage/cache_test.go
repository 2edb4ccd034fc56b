package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/intervia/go-interview-api/internal/interview"
	"github.com/intervia/go-interview-api/internal/interview/session"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionStore struct {
	sessions map[string]*session.Session
	gets     int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]*session.Session{}}
}

func (s *fakeSessionStore) SaveSession(_ context.Context, sess *session.Session) error {
	s.sessions[sess.ID] = sess
	return nil
}

func (s *fakeSessionStore) GetSession(_ context.Context, id string) (*session.Session, error) {
	s.gets++
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: session %s", interview.ErrNotFound, id)
	}
	return sess, nil
}

func (s *fakeSessionStore) UpdateSession(_ context.Context, sess *session.Session) error {
	s.sessions[sess.ID] = sess
	return nil
}

func (s *fakeSessionStore) ListSessionsByUser(_ context.Context, _ string, _ session.Status, _ int) ([]*session.Session, error) {
	return nil, nil
}

type fakeSessionCache struct {
	sessions map[string]*session.Session
	failing  bool
}

func newFakeSessionCache() *fakeSessionCache {
	return &fakeSessionCache{sessions: map[string]*session.Session{}}
}

func (c *fakeSessionCache) CacheSession(_ context.Context, sess *session.Session, _ time.Duration) error {
	if c.failing {
		return errors.New("cache down")
	}
	c.sessions[sess.ID] = sess
	return nil
}

func (c *fakeSessionCache) GetCachedSession(_ context.Context, id string) (*session.Session, error) {
	if c.failing {
		return nil, errors.New("cache down")
	}
	sess, ok := c.sessions[id]
	if !ok {
		return nil, errors.Wrap(interview.ErrNotFound, "session not cached")
	}
	return sess, nil
}

func (c *fakeSessionCache) InvalidateSession(_ context.Context, id string) error {
	if c.failing {
		return errors.New("cache down")
	}
	delete(c.sessions, id)
	return nil
}

func newCacheTestSession(t *testing.T) *session.Session {
	t.Helper()
	sess, err := session.New("user-1", "scenario-1",
		session.Config{DifficultyLevel: "básico"},
		[]string{"básico"},
		time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return sess
}

func TestCachedStoreReadThrough(t *testing.T) {
	backing := newFakeSessionStore()
	cache := newFakeSessionCache()
	store := NewCachedSessionStore(backing, cache)
	ctx := context.Background()

	sess := newCacheTestSession(t)
	require.NoError(t, backing.SaveSession(ctx, sess))

	got, err := store.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, 1, backing.gets)

	// Second read is served from the cache.
	_, err = store.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, backing.gets)
}

func TestCachedStoreRefreshesOnUpdate(t *testing.T) {
	backing := newFakeSessionStore()
	cache := newFakeSessionCache()
	store := NewCachedSessionStore(backing, cache)
	ctx := context.Background()

	sess := newCacheTestSession(t)
	require.NoError(t, store.SaveSession(ctx, sess))
	require.Contains(t, cache.sessions, sess.ID)

	require.NoError(t, store.UpdateSession(ctx, sess))
	assert.Contains(t, cache.sessions, sess.ID)
}

func TestCachedStoreEvictsTerminalSessions(t *testing.T) {
	backing := newFakeSessionStore()
	cache := newFakeSessionCache()
	store := NewCachedSessionStore(backing, cache)
	ctx := context.Background()

	sess := newCacheTestSession(t)
	require.NoError(t, store.SaveSession(ctx, sess))
	require.Contains(t, cache.sessions, sess.ID)

	require.NoError(t, sess.End(time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)))
	require.NoError(t, store.UpdateSession(ctx, sess))
	assert.NotContains(t, cache.sessions, sess.ID)
}

func TestCachedStoreDegradesWhenCacheFails(t *testing.T) {
	backing := newFakeSessionStore()
	cache := newFakeSessionCache()
	cache.failing = true
	store := NewCachedSessionStore(backing, cache)
	ctx := context.Background()

	sess := newCacheTestSession(t)
	require.NoError(t, store.SaveSession(ctx, sess))

	got, err := store.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
}

func TestCachedStoreMissingSession(t *testing.T) {
	store := NewCachedSessionStore(newFakeSessionStore(), newFakeSessionCache())

	_, err := store.GetSession(context.Background(), "nope")
	assert.ErrorIs(t, err, interview.ErrNotFound)
}
