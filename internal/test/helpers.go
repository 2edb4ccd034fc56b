package test

import (
	"context"
	"testing"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/intervia/go-interview-api/internal/interview/provider"
	"github.com/intervia/go-interview-api/internal/interview/scenario"
	"github.com/intervia/go-interview-api/internal/interview/session"
	"github.com/intervia/go-interview-api/internal/interview/user"
	"github.com/stretchr/testify/require"
)

// NewClock returns a mock clock pinned to a fixed instant so durations
// in tests are deterministic.
func NewClock(t *testing.T) *time2.MockClock {
	t.Helper()
	return time2.NewMockClock(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
}

// NewUser creates and stores a valid account.
func NewUser(t *testing.T, store *Store, email string) *user.User {
	t.Helper()
	u, err := user.New(email, "secret123", "Ana", "García", time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, store.SaveUser(context.Background(), u))
	return u
}

// NewScenario creates and stores a scenario with the default options.
func NewScenario(t *testing.T, store *Store, name, category string) *scenario.Scenario {
	t.Helper()
	sc, err := scenario.New(name, "Entrevista de prueba", category, nil, nil, time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, store.SaveScenario(context.Background(), sc))
	return sc
}

// NewSession creates and stores an active session for the given user and
// scenario.
func NewSession(t *testing.T, store *Store, u *user.User, sc *scenario.Scenario, startedAt time.Time) *session.Session {
	t.Helper()
	sess, err := session.New(u.ID, sc.ID, session.Config{DifficultyLevel: "básico"}, sc.DifficultyLevels, startedAt)
	require.NoError(t, err)
	require.NoError(t, store.SaveSession(context.Background(), sess))
	return sess
}

// StaticProvider always answers with the same question. Err, when set,
// is returned instead.
type StaticProvider struct {
	Question string
	Err      error
	Calls    int
}

func (p *StaticProvider) NextQuestion(_ context.Context, _ provider.Context) (string, error) {
	p.Calls++
	if p.Err != nil {
		return "", p.Err
	}
	return p.Question, nil
}

var _ provider.QuestionProvider = (*StaticProvider)(nil)
