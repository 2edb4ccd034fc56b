package scoring_test

import (
	"testing"

	"github.com/intervia/go-interview-api/internal/interview/metrics"
	"github.com/intervia/go-interview-api/internal/interview/scoring"
	"github.com/stretchr/testify/assert"
)

func TestScoreNeutralMetricsKeepBaseline(t *testing.T) {
	rules := scoring.DefaultRules()
	s := rules.Score(metrics.Snapshot{
		TotalResponses:  4,
		TotalWords:      120, // 30 words per response
		AvgResponseTime: 5,
		SessionDuration: 15,
	})

	assert.Equal(t, 7.0, s.Overall)
	assert.Equal(t, 7.0, s.Communication)
	assert.Equal(t, 7.0, s.Confidence)
	assert.Equal(t, 7.0, s.Technical)
}

func TestScoreFastVerboseLongSession(t *testing.T) {
	rules := scoring.DefaultRules()

	// Exactly 100 words per response, quick answers, 40 minutes.
	s := rules.Score(metrics.Snapshot{
		TotalResponses:  2,
		TotalWords:      200,
		AvgResponseTime: 1,
		SessionDuration: 40,
	})

	assert.Equal(t, 7.5, s.Overall)
	assert.Equal(t, 6.5, s.Communication)
	assert.Equal(t, 6.5, s.Confidence)
	assert.Equal(t, 7.0, s.Technical)
}

func TestScoreSlowResponses(t *testing.T) {
	rules := scoring.DefaultRules()

	s := rules.Score(metrics.Snapshot{
		TotalResponses:  2,
		TotalWords:      60,
		AvgResponseTime: 15,
		SessionDuration: 20,
	})

	assert.Equal(t, 6.0, s.Overall)
	assert.Equal(t, 7.0, s.Communication)
	assert.Equal(t, 5.0, s.Confidence)
	assert.Equal(t, 7.0, s.Technical)
}

func TestScoreClampsUnderExtremes(t *testing.T) {
	rules := scoring.DefaultRules()

	s := rules.Score(metrics.Snapshot{
		TotalResponses:  1,
		TotalWords:      0,
		AvgResponseTime: 10000,
		SessionDuration: 0.1,
	})

	assert.GreaterOrEqual(t, s.Overall, rules.MinScore)
	assert.GreaterOrEqual(t, s.Communication, rules.MinScore)
	assert.GreaterOrEqual(t, s.Confidence, rules.MinScore)
	assert.LessOrEqual(t, s.Technical, rules.MaxScore)

	// overall: 7 - 1 (slow) - 1 (brief) - 2 (short) = 3
	assert.Equal(t, 3.0, s.Overall)
	assert.Equal(t, 5.5, s.Communication)
	assert.Equal(t, 5.0, s.Confidence)
}

func TestScoreZeroTurnSession(t *testing.T) {
	rules := scoring.DefaultRules()

	s := rules.Score(metrics.Snapshot{})

	// avg_response_time 0 < 2 and avg_words 0 < 10 and duration 0 < 5.
	assert.Equal(t, 4.0, s.Overall)
	assert.Equal(t, 5.5, s.Communication)
	assert.Equal(t, 6.5, s.Confidence)
	assert.Equal(t, 7.0, s.Technical)
}

func TestScoreLongSessionBonus(t *testing.T) {
	rules := scoring.DefaultRules()

	s := rules.Score(metrics.Snapshot{
		TotalResponses:  10,
		TotalWords:      300,
		AvgResponseTime: 4,
		SessionDuration: 45,
	})

	assert.Equal(t, 7.5, s.Overall)
	assert.Equal(t, 7.0, s.Confidence)
}

func TestGenerateIncludesClosingSuggestionAlways(t *testing.T) {
	catalog := scoring.DefaultCatalog()
	rules := scoring.DefaultRules()

	m := metrics.Snapshot{TotalResponses: 5, TotalWords: 150, AvgResponseTime: 4, SessionDuration: 20}
	fb := catalog.Generate(rules.Score(m), m)

	assert.NotEmpty(t, fb.SpecificSuggestions)
	assert.Equal(t, catalog.SuggestionClosing, fb.SpecificSuggestions[len(fb.SpecificSuggestions)-1])
}

func TestGenerateStrengths(t *testing.T) {
	catalog := scoring.DefaultCatalog()

	m := metrics.Snapshot{TotalResponses: 6, TotalWords: 180, AvgResponseTime: 3, SessionDuration: 40}
	s := scoring.DefaultRules().Score(m)
	fb := catalog.Generate(s, m)

	// 7.5 overall misses the excellence threshold of 8; pacing and
	// engagement both trigger.
	assert.NotContains(t, fb.Strengths, catalog.StrengthExcellence)
	assert.Contains(t, fb.Strengths, catalog.StrengthNaturalPacing)
	assert.Contains(t, fb.Strengths, catalog.StrengthEngagement)
	assert.Empty(t, fb.AreasForImprovement)
}

func TestGenerateImprovementAreas(t *testing.T) {
	catalog := scoring.DefaultCatalog()

	m := metrics.Snapshot{TotalResponses: 2, TotalWords: 8, AvgResponseTime: 12, SessionDuration: 3}
	s := scoring.DefaultRules().Score(m)
	fb := catalog.Generate(s, m)

	assert.Contains(t, fb.AreasForImprovement, catalog.ImprovementClarity)
	assert.Contains(t, fb.AreasForImprovement, catalog.ImprovementConfidence)
	assert.Contains(t, fb.SpecificSuggestions, catalog.SuggestionElaborate)
	assert.Contains(t, fb.SpecificSuggestions, catalog.SuggestionFluency)
}
