package storage

import (
	"context"
	"time"

	"github.com/intervia/go-interview-api/internal/interview/scenario"
	"github.com/intervia/go-interview-api/internal/interview/session"
	"github.com/intervia/go-interview-api/internal/interview/user"
)

// SessionStore persists interview sessions. The ledger, metrics and
// status of a session are written as one unit; UpdateSession enforces
// optimistic versioning and fails with interview.ErrConflict when the
// stored version has moved.
type SessionStore interface {
	SaveSession(ctx context.Context, sess *session.Session) error
	GetSession(ctx context.Context, id string) (*session.Session, error)
	UpdateSession(ctx context.Context, sess *session.Session) error
	ListSessionsByUser(ctx context.Context, userID string, status session.Status, limit int) ([]*session.Session, error)
}

// UserStore persists user accounts.
type UserStore interface {
	SaveUser(ctx context.Context, u *user.User) error
	GetUser(ctx context.Context, id string) (*user.User, error)
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
	UpdateUser(ctx context.Context, u *user.User) error
}

// ScenarioStore persists interview scenarios.
type ScenarioStore interface {
	SaveScenario(ctx context.Context, sc *scenario.Scenario) error
	GetScenario(ctx context.Context, id string) (*scenario.Scenario, error)
	ListScenarios(ctx context.Context, category string, activeOnly bool) ([]*scenario.Scenario, error)
	ListCategories(ctx context.Context) ([]string, error)
	CountScenarios(ctx context.Context) (int, error)
}

// SessionLocker serializes concurrent mutations of one session. Two
// concurrent requests against the same session id must not corrupt the
// ledger; the locker makes the read-modify-write a critical section.
type SessionLocker interface {
	AcquireLock(ctx context.Context, sessionID string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, sessionID string) error
}

// SessionCache is the optional hot cache for active sessions.
type SessionCache interface {
	CacheSession(ctx context.Context, sess *session.Session, ttl time.Duration) error
	GetCachedSession(ctx context.Context, id string) (*session.Session, error)
	InvalidateSession(ctx context.Context, id string) error
}
