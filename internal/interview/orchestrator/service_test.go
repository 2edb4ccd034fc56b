package orchestrator_test

import (
	"context"
	"testing"
	"time"

	"github.com/intervia/go-interview-api/internal/infra/storage"
	"github.com/intervia/go-interview-api/internal/interview"
	"github.com/intervia/go-interview-api/internal/interview/ledger"
	"github.com/intervia/go-interview-api/internal/interview/orchestrator"
	"github.com/intervia/go-interview-api/internal/interview/session"
	"github.com/intervia/go-interview-api/internal/test"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    *test.Store
	provider *test.StaticProvider
	service  *orchestrator.Service
	userID   string
	scenario string
}

func newFixture(t *testing.T, p *test.StaticProvider) *fixture {
	t.Helper()

	store := test.NewStore()
	clock := test.NewClock(t)
	u := test.NewUser(t, store, "candidate@example.com")
	sc := test.NewScenario(t, store, "Programador Junior", "Tecnología")

	svc := orchestrator.NewService(store, store, store, storage.NewMemoryLocker(), p, clock, 0)

	return &fixture{
		store:    store,
		provider: p,
		service:  svc,
		userID:   u.ID,
		scenario: sc.ID,
	}
}

func (f *fixture) createSession(t *testing.T) *session.Session {
	t.Helper()
	sess, err := f.service.CreateSession(context.Background(), f.userID, f.scenario, session.Config{DifficultyLevel: "básico"})
	require.NoError(t, err)
	return sess
}

func TestCreateSessionResolvesReferences(t *testing.T) {
	f := newFixture(t, &test.StaticProvider{Question: "¿Cuéntame sobre ti?"})

	sess := f.createSession(t)
	assert.Equal(t, f.userID, sess.UserID)
	assert.Equal(t, session.StatusActive, sess.Status)

	_, err := f.service.CreateSession(context.Background(), "missing-user", f.scenario, session.Config{DifficultyLevel: "básico"})
	assert.ErrorIs(t, err, interview.ErrNotFound)

	_, err = f.service.CreateSession(context.Background(), f.userID, "missing-scenario", session.Config{DifficultyLevel: "básico"})
	assert.ErrorIs(t, err, interview.ErrNotFound)
}

func TestNextQuestionAppendsInterviewerTurn(t *testing.T) {
	f := newFixture(t, &test.StaticProvider{Question: "¿Qué lenguajes dominas?"})
	sess := f.createSession(t)

	result, err := f.service.NextQuestion(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "¿Qué lenguajes dominas?", result.Question)
	assert.False(t, result.FromFallback)

	stored, err := f.service.GetSession(context.Background(), sess.ID)
	require.NoError(t, err)
	turns := stored.Ledger.Turns()
	require.Len(t, turns, 1)
	assert.Equal(t, ledger.SpeakerInterviewer, turns[0].Speaker)
	assert.Equal(t, "¿Qué lenguajes dominas?", turns[0].Message)
	require.NotNil(t, turns[0].ResponseTime)
}

func TestNextQuestionProviderFailureFallsBack(t *testing.T) {
	f := newFixture(t, &test.StaticProvider{Err: errors.New("model unavailable")})
	sess := f.createSession(t)

	result, err := f.service.NextQuestion(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.True(t, result.FromFallback)
	assert.Equal(t, "¿Podrías contarme sobre tu experiencia en programación?", result.Question)
}

func TestNextQuestionEmptyProviderResultFallsBack(t *testing.T) {
	f := newFixture(t, &test.StaticProvider{Question: ""})
	sess := f.createSession(t)

	result, err := f.service.NextQuestion(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.True(t, result.FromFallback)
}

func TestSubmitResponseUpdatesMetrics(t *testing.T) {
	f := newFixture(t, &test.StaticProvider{Question: "¿Cuéntame sobre ti?"})
	sess := f.createSession(t)

	rt := 3.5
	updated, err := f.service.SubmitResponse(context.Background(), sess.ID, "Tengo experiencia con Go y Python", &rt)
	require.NoError(t, err)

	assert.Equal(t, 1, updated.Metrics.TotalResponses)
	assert.Equal(t, 6, updated.Metrics.TotalWords)
	assert.InDelta(t, 3.5, updated.Metrics.AvgResponseTime, 0.001)
}

func TestSubmitResponseEmptyMessageFails(t *testing.T) {
	f := newFixture(t, &test.StaticProvider{Question: "¿Cuéntame sobre ti?"})
	sess := f.createSession(t)

	_, err := f.service.SubmitResponse(context.Background(), sess.ID, "  ", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, interview.ErrValidation)

	stored, err := f.service.GetSession(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Ledger.Len())
}

func TestEndSessionIsFinal(t *testing.T) {
	f := newFixture(t, &test.StaticProvider{Question: "¿Cuéntame sobre ti?"})
	sess := f.createSession(t)

	ended, err := f.service.EndSession(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusCompleted, ended.Status)
	assert.NotNil(t, ended.EndedAt)

	_, err = f.service.EndSession(context.Background(), sess.ID)
	assert.ErrorIs(t, err, interview.ErrInvalidState)

	_, err = f.service.SubmitResponse(context.Background(), sess.ID, "hola", nil)
	assert.ErrorIs(t, err, interview.ErrInvalidState)
}

func TestAbandonSession(t *testing.T) {
	f := newFixture(t, &test.StaticProvider{Question: "¿Cuéntame sobre ti?"})
	sess := f.createSession(t)

	abandoned, err := f.service.AbandonSession(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusAbandoned, abandoned.Status)

	_, err = f.service.EndSession(context.Background(), sess.ID)
	assert.ErrorIs(t, err, interview.ErrInvalidState)
}

func TestMutationConflictSurfacesAsConflict(t *testing.T) {
	f := newFixture(t, &test.StaticProvider{Question: "¿Cuéntame sobre ti?"})
	sess := f.createSession(t)

	f.store.FailNextUpdate = true
	_, err := f.service.SubmitResponse(context.Background(), sess.ID, "hola qué tal", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, interview.ErrConflict)
}

func TestConcurrentLockHolderRejected(t *testing.T) {
	f := newFixture(t, &test.StaticProvider{Question: "¿Cuéntame sobre ti?"})
	sess := f.createSession(t)

	locker := storage.NewMemoryLocker()
	held, err := locker.AcquireLock(context.Background(), sess.ID, 10*time.Second)
	require.NoError(t, err)
	require.True(t, held)

	svc := orchestrator.NewService(f.store, f.store, f.store, locker, f.provider, test.NewClock(t), 0)
	_, err = svc.SubmitResponse(context.Background(), sess.ID, "hola qué tal", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, interview.ErrConflict)
}
