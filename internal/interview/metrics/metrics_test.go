package metrics_test

import (
	"testing"
	"time"

	"github.com/intervia/go-interview-api/internal/interview/ledger"
	"github.com/intervia/go-interview-api/internal/interview/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputeEmptyLedger(t *testing.T) {
	started := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	now := started.Add(10 * time.Minute)

	snap := metrics.Recompute(ledger.New(), started, nil, now)

	assert.Equal(t, 0, snap.TotalResponses)
	assert.Equal(t, 0, snap.TotalWords)
	assert.Equal(t, 0.0, snap.AvgResponseTime)
	assert.InDelta(t, 10.0, snap.SessionDuration, 0.001)
}

func TestRecomputeCountsUserTurnsOnly(t *testing.T) {
	started := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	l := ledger.New()

	_, err := l.Append(ledger.SpeakerInterviewer, "¿Cuál es tu experiencia profesional?", started, nil)
	require.NoError(t, err)

	rt1 := 4.0
	_, err = l.Append(ledger.SpeakerUser, "Tengo tres años de experiencia", started.Add(time.Minute), &rt1)
	require.NoError(t, err)

	rt2 := 6.0
	_, err = l.Append(ledger.SpeakerUser, "También trabajé en soporte", started.Add(2*time.Minute), &rt2)
	require.NoError(t, err)

	snap := metrics.Recompute(l, started, nil, started.Add(5*time.Minute))

	assert.Equal(t, 2, snap.TotalResponses)
	assert.Equal(t, 9, snap.TotalWords)
	assert.InDelta(t, 5.0, snap.AvgResponseTime, 0.001)
	assert.InDelta(t, 5.0, snap.SessionDuration, 0.001)
}

func TestRecomputeUsesEndedAtWhenTerminal(t *testing.T) {
	started := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	ended := started.Add(20 * time.Minute)

	snap := metrics.Recompute(ledger.New(), started, &ended, ended.Add(time.Hour))

	assert.InDelta(t, 20.0, snap.SessionDuration, 0.001)
}

func TestDurationMinutesClampsNegative(t *testing.T) {
	started := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 0.0, metrics.DurationMinutes(started, nil, started.Add(-time.Minute)))
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, metrics.CountWords(""))
	assert.Equal(t, 0, metrics.CountWords("   "))
	assert.Equal(t, 3, metrics.CountWords("hola  qué tal"))
}

func TestMergeKeyWise(t *testing.T) {
	snap := metrics.Snapshot{
		TotalResponses:  3,
		TotalWords:      40,
		AvgResponseTime: 4.5,
		SessionDuration: 12,
	}

	words := 55
	duration := 15.0
	merged := snap.Merge(metrics.Partial{
		TotalWords:      &words,
		SessionDuration: &duration,
	})

	assert.Equal(t, 3, merged.TotalResponses)
	assert.Equal(t, 55, merged.TotalWords)
	assert.Equal(t, 4.5, merged.AvgResponseTime)
	assert.Equal(t, 15.0, merged.SessionDuration)
}

func TestAvgWordsPerResponseFloorsResponses(t *testing.T) {
	assert.Equal(t, 0.0, metrics.Snapshot{}.AvgWordsPerResponse())
	assert.Equal(t, 100.0, metrics.Snapshot{TotalResponses: 2, TotalWords: 200}.AvgWordsPerResponse())
	assert.Equal(t, 30.0, metrics.Snapshot{TotalResponses: 0, TotalWords: 30}.AvgWordsPerResponse())
}
