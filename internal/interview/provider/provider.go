package provider

import (
	"context"

	"github.com/intervia/go-interview-api/internal/interview/ledger"
)

// Context is everything the question provider may use to produce the next
// interviewer question.
type Context struct {
	ScenarioName        string
	ScenarioDescription string
	DifficultyLevel     string
	InterviewerAvatar   string
	CustomDescription   string
	History             []ledger.Turn
}

// QuestionProvider generates the next interviewer question for the given
// conversation context. Implementations return interview.ErrProvider or
// interview.ErrProviderTimeout on failure; the orchestrator recovers both
// via its fallback catalog and performs no retries.
type QuestionProvider interface {
	NextQuestion(ctx context.Context, ic Context) (string, error)
}
