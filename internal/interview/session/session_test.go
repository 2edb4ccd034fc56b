package session_test

import (
	"testing"
	"time"

	"github.com/intervia/go-interview-api/internal/interview"
	"github.com/intervia/go-interview-api/internal/interview/ledger"
	"github.com/intervia/go-interview-api/internal/interview/metrics"
	"github.com/intervia/go-interview-api/internal/interview/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var difficulties = []string{"básico", "intermedio", "avanzado"}

func newActiveSession(t *testing.T) *session.Session {
	t.Helper()
	sess, err := session.New("user-1", "scenario-1", session.Config{DifficultyLevel: "básico"}, difficulties, time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return sess
}

func TestNewAppliesDefaults(t *testing.T) {
	sess := newActiveSession(t)

	assert.Equal(t, session.StatusActive, sess.Status)
	assert.Equal(t, session.DefaultInterviewerAvatar, sess.Config.InterviewerAvatar)
	assert.Equal(t, session.DefaultEnvironment, sess.Config.Environment)
	assert.Nil(t, sess.EndedAt)
	assert.Equal(t, int64(1), sess.Version)
	assert.Equal(t, 0, sess.Ledger.Len())
}

func TestNewRejectsUnknownDifficulty(t *testing.T) {
	_, err := session.New("user-1", "scenario-1", session.Config{DifficultyLevel: "imposible"}, difficulties, time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, interview.ErrValidation)
}

func TestNewRejectsMissingReferences(t *testing.T) {
	_, err := session.New("", "scenario-1", session.Config{DifficultyLevel: "básico"}, difficulties, time.Now())
	assert.ErrorIs(t, err, interview.ErrValidation)

	_, err = session.New("user-1", "", session.Config{DifficultyLevel: "básico"}, difficulties, time.Now())
	assert.ErrorIs(t, err, interview.ErrValidation)
}

func TestRecordUserTurnRecomputesMetrics(t *testing.T) {
	sess := newActiveSession(t)

	rt := 3.0
	_, err := sess.RecordTurn(ledger.SpeakerUser, "Tengo experiencia en ventas y atención", &rt, sess.StartedAt.Add(2*time.Minute))
	require.NoError(t, err)

	assert.Equal(t, 1, sess.Metrics.TotalResponses)
	assert.Equal(t, 6, sess.Metrics.TotalWords)
	assert.InDelta(t, 3.0, sess.Metrics.AvgResponseTime, 0.001)
	assert.InDelta(t, 2.0, sess.Metrics.SessionDuration, 0.001)
}

func TestRecordInterviewerTurnSkipsRecompute(t *testing.T) {
	sess := newActiveSession(t)

	_, err := sess.RecordTurn(ledger.SpeakerInterviewer, "¿Cuéntame sobre ti?", nil, sess.StartedAt.Add(time.Minute))
	require.NoError(t, err)

	assert.Equal(t, 0, sess.Metrics.TotalResponses)
	assert.Equal(t, 1, sess.Ledger.Len())
}

func TestEndSetsTimestampAndRecomputes(t *testing.T) {
	sess := newActiveSession(t)
	endAt := sess.StartedAt.Add(12 * time.Minute)

	require.NoError(t, sess.End(endAt))

	assert.Equal(t, session.StatusCompleted, sess.Status)
	require.NotNil(t, sess.EndedAt)
	assert.Equal(t, endAt, *sess.EndedAt)
	assert.InDelta(t, 12.0, sess.Metrics.SessionDuration, 0.001)
}

func TestEndedAtMatchesTerminality(t *testing.T) {
	sess := newActiveSession(t)
	assert.False(t, sess.Status.Terminal())
	assert.Nil(t, sess.EndedAt)

	require.NoError(t, sess.End(sess.StartedAt.Add(time.Minute)))
	assert.True(t, sess.Status.Terminal())
	assert.NotNil(t, sess.EndedAt)
}

func TestDoubleEndFailsUnchanged(t *testing.T) {
	sess := newActiveSession(t)
	first := sess.StartedAt.Add(10 * time.Minute)
	require.NoError(t, sess.End(first))

	err := sess.End(first.Add(time.Hour))
	require.Error(t, err)
	assert.ErrorIs(t, err, interview.ErrInvalidState)
	assert.Equal(t, first, *sess.EndedAt)
	assert.Equal(t, session.StatusCompleted, sess.Status)
}

func TestAbandonOnlyFromActive(t *testing.T) {
	sess := newActiveSession(t)
	require.NoError(t, sess.Abandon(sess.StartedAt.Add(time.Minute)))
	assert.Equal(t, session.StatusAbandoned, sess.Status)

	err := sess.Abandon(sess.StartedAt.Add(2 * time.Minute))
	assert.ErrorIs(t, err, interview.ErrInvalidState)

	completed := newActiveSession(t)
	require.NoError(t, completed.End(completed.StartedAt.Add(time.Minute)))
	err = completed.Abandon(completed.StartedAt.Add(2 * time.Minute))
	assert.ErrorIs(t, err, interview.ErrInvalidState)
}

func TestRecordTurnOnTerminalSessionFails(t *testing.T) {
	sess := newActiveSession(t)
	require.NoError(t, sess.End(sess.StartedAt.Add(time.Minute)))

	_, err := sess.RecordTurn(ledger.SpeakerUser, "hola", nil, sess.StartedAt.Add(2*time.Minute))
	require.Error(t, err)
	assert.ErrorIs(t, err, interview.ErrInvalidState)
	assert.Equal(t, 0, sess.Ledger.Len())
}

func TestUpdateMetricsMerges(t *testing.T) {
	sess := newActiveSession(t)

	words := 80
	sess.UpdateMetrics(metrics.Partial{TotalWords: &words})

	assert.Equal(t, 80, sess.Metrics.TotalWords)
	assert.Equal(t, 0, sess.Metrics.TotalResponses)
}
