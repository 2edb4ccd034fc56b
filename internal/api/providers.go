package api

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/intervia/go-interview-api/internal/auth"
	"github.com/intervia/go-interview-api/internal/config"
	"github.com/intervia/go-interview-api/internal/infra/storage"
	"github.com/intervia/go-interview-api/internal/interview/feedback"
	"github.com/intervia/go-interview-api/internal/interview/orchestrator"
	"github.com/intervia/go-interview-api/internal/interview/provider"
	"github.com/intervia/go-interview-api/internal/interview/scoring"
	"github.com/intervia/go-interview-api/internal/interview/stats"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// PROVIDERS - define here only providers that for various reasons (e.g.
// cyclic dependency) can't live in their corresponding packages, or for
// wrapping providers that only accept sub-configs.
// https://github.com/google/wire/blob/main/docs/guide.md#defining-providers

func NewClock(t ...*testing.T) time2.Clock {
	var clock time2.Clock

	useMock := len(t) > 0 && t[0] != nil

	if useMock {
		clock = time2.NewMockClock(time.Now())
	} else {
		clock = time2.DefaultClock
	}

	return clock
}

func NoTest() []*testing.T {
	return nil
}

func NewDB(cfg config.Server) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "ping database")
	}
	return db, nil
}

func NewPostgresStore(db *sql.DB) *storage.PostgresStore {
	return storage.NewPostgresStore(db)
}

// NewRedisStore connects to redis when enabled, nil otherwise. A nil
// store makes the dependent providers fall back to their in-process
// variants.
func NewRedisStore(cfg config.Server) (*storage.RedisStore, error) {
	if !cfg.Redis.Enabled {
		log.Warn().Msg("Redis disabled, using in-process session locking without a session cache")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Endpoint,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "ping redis")
	}

	return storage.NewRedisStore(client), nil
}

// NewSessionLocker returns the redis-backed locker when available,
// otherwise the in-process fallback. The fallback only serializes within
// a single process.
func NewSessionLocker(redisStore *storage.RedisStore) storage.SessionLocker {
	if redisStore == nil {
		return storage.NewMemoryLocker()
	}
	return redisStore
}

// NewSessionStore layers the redis session cache over the database store
// when redis is available.
func NewSessionStore(store *storage.PostgresStore, redisStore *storage.RedisStore) storage.SessionStore {
	if redisStore == nil {
		return store
	}
	return storage.NewCachedSessionStore(store, redisStore)
}

func NewQuestionProvider(cfg config.Server) provider.QuestionProvider {
	return provider.NewGemini(provider.GeminiConfig{
		APIKey:          cfg.AI.APIKey,
		Model:           cfg.AI.Model,
		Endpoint:        cfg.AI.Endpoint,
		Temperature:     cfg.AI.Temperature,
		MaxOutputTokens: cfg.AI.MaxOutputTokens,
	}, &http.Client{})
}

func NewJWTManager(cfg config.Server) *auth.JWTManager {
	return auth.NewJWTManager(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenDuration)
}

func NewAuthService(store *storage.PostgresStore, jwt *auth.JWTManager, clock time2.Clock) *auth.Service {
	return auth.NewService(store, jwt, clock)
}

func NewOrchestratorService(cfg config.Server, sessions storage.SessionStore, store *storage.PostgresStore, locker storage.SessionLocker, questionProvider provider.QuestionProvider, clock time2.Clock) *orchestrator.Service {
	return orchestrator.NewService(sessions, store, store, locker, questionProvider, clock, cfg.AI.RequestTimeout)
}

func NewFeedbackService(store *storage.PostgresStore, clock time2.Clock) *feedback.Service {
	return feedback.NewService(store, scoring.DefaultRules(), scoring.DefaultCatalog(), clock)
}

func NewStatsService(store *storage.PostgresStore) *stats.Service {
	return stats.NewService(store, store, store)
}
