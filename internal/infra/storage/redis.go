package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/intervia/go-interview-api/internal/interview"
	"github.com/intervia/go-interview-api/internal/interview/session"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "interview:session:"
	lockKeyPrefix    = "interview:lock:"
)

// RedisStore caches active sessions and serializes concurrent mutations
// of one session through SetNX locks.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates the redis-backed cache and locker.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

var (
	_ SessionCache  = (*RedisStore)(nil)
	_ SessionLocker = (*RedisStore)(nil)
)

type cachedSession struct {
	ID         string           `json:"id"`
	UserID     string           `json:"user_id"`
	ScenarioID string           `json:"scenario_id"`
	Config     session.Config   `json:"config"`
	Status     session.Status   `json:"status"`
	StartedAt  time.Time        `json:"started_at"`
	EndedAt    *time.Time       `json:"ended_at,omitempty"`
	History    json.RawMessage  `json:"conversation_history"`
	Metrics    json.RawMessage  `json:"performance_metrics"`
	Version    int64            `json:"version"`
}

// CacheSession stores a session snapshot with a TTL.
func (s *RedisStore) CacheSession(ctx context.Context, sess *session.Session, ttl time.Duration) error {
	history, err := json.Marshal(sess.Ledger)
	if err != nil {
		return errors.Wrap(err, "marshal ledger")
	}
	metricsJSON, err := json.Marshal(sess.Metrics)
	if err != nil {
		return errors.Wrap(err, "marshal metrics")
	}
	data, err := json.Marshal(cachedSession{
		ID:         sess.ID,
		UserID:     sess.UserID,
		ScenarioID: sess.ScenarioID,
		Config:     sess.Config,
		Status:     sess.Status,
		StartedAt:  sess.StartedAt,
		EndedAt:    sess.EndedAt,
		History:    history,
		Metrics:    metricsJSON,
		Version:    sess.Version,
	})
	if err != nil {
		return errors.Wrap(err, "marshal session")
	}

	if err := s.client.Set(ctx, sessionKeyPrefix+sess.ID, data, ttl).Err(); err != nil {
		return errors.Wrap(err, "cache session")
	}
	return nil
}

// GetCachedSession returns a cached session or interview.ErrNotFound.
func (s *RedisStore) GetCachedSession(ctx context.Context, id string) (*session.Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errors.Wrap(interview.ErrNotFound, "session not cached")
		}
		return nil, errors.Wrap(err, "get cached session")
	}

	var cached cachedSession
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, errors.Wrap(err, "unmarshal cached session")
	}

	sess := &session.Session{
		ID:         cached.ID,
		UserID:     cached.UserID,
		ScenarioID: cached.ScenarioID,
		Config:     cached.Config,
		Status:     cached.Status,
		StartedAt:  cached.StartedAt,
		EndedAt:    cached.EndedAt,
		Version:    cached.Version,
	}
	if err := json.Unmarshal(cached.History, &sess.Ledger); err != nil {
		return nil, errors.Wrap(err, "unmarshal cached ledger")
	}
	if err := json.Unmarshal(cached.Metrics, &sess.Metrics); err != nil {
		return nil, errors.Wrap(err, "unmarshal cached metrics")
	}
	return sess, nil
}

// InvalidateSession drops the cached copy.
func (s *RedisStore) InvalidateSession(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return errors.Wrap(err, "invalidate session")
	}
	return nil
}

// AcquireLock takes the per-session mutation lock. Returns false without
// error when another request holds it.
func (s *RedisStore) AcquireLock(ctx context.Context, sessionID string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, lockKeyPrefix+sessionID, "1", ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "acquire session lock")
	}
	return ok, nil
}

// ReleaseLock frees the per-session mutation lock.
func (s *RedisStore) ReleaseLock(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, lockKeyPrefix+sessionID).Err(); err != nil {
		return errors.Wrap(err, "release session lock")
	}
	return nil
}
