package feedback

import (
	"time"

	"github.com/google/uuid"
	"github.com/intervia/go-interview-api/internal/interview/metrics"
	"github.com/intervia/go-interview-api/internal/interview/scoring"
)

// Feedback is the terminal assessment of one completed session. It is
// created at most once per session and never updated.
type Feedback struct {
	ID        string
	SessionID string

	Scores scoring.Scores

	Strengths           []string
	AreasForImprovement []string
	SpecificSuggestions []string

	// Denormalized metric copies frozen at generation time.
	AvgResponseTime  float64
	TotalWordsSpoken int

	// HesitationCount is reserved in the schema. Disfluency detection is
	// not implemented; the value is always 0.
	HesitationCount int

	CreatedAt time.Time
}

// Generate builds a feedback record from the session's final metrics
// snapshot using the given rule table and template catalog.
func Generate(sessionID string, m metrics.Snapshot, rules scoring.Rules, catalog scoring.Catalog, now time.Time) *Feedback {
	scores := rules.Score(m)
	commentary := catalog.Generate(scores, m)

	return &Feedback{
		ID:                  uuid.NewString(),
		SessionID:           sessionID,
		Scores:              scores,
		Strengths:           commentary.Strengths,
		AreasForImprovement: commentary.AreasForImprovement,
		SpecificSuggestions: commentary.SpecificSuggestions,
		AvgResponseTime:     m.AvgResponseTime,
		TotalWordsSpoken:    m.TotalWords,
		HesitationCount:     0,
		CreatedAt:           now,
	}
}
