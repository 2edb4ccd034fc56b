package metrics

import (
	"strings"
	"time"

	"github.com/intervia/go-interview-api/internal/interview/ledger"
)

// Snapshot is the derived performance summary owned by a session. It is
// recomputed wholesale after every user turn and at session end; it is
// never patched incrementally except through Merge.
type Snapshot struct {
	TotalResponses  int     `json:"total_responses"`
	TotalWords      int     `json:"total_words"`
	AvgResponseTime float64 `json:"avg_response_time"` // seconds
	SessionDuration float64 `json:"session_duration"`  // minutes
}

// Partial carries an out-of-band metrics update. Nil fields keep their
// current value; set fields win.
type Partial struct {
	TotalResponses  *int     `json:"total_responses,omitempty"`
	TotalWords      *int     `json:"total_words,omitempty"`
	AvgResponseTime *float64 `json:"avg_response_time,omitempty"`
	SessionDuration *float64 `json:"session_duration,omitempty"`
}

// Recompute derives a fresh snapshot from the ledger and the session
// timestamps. endedAt is nil while the session is still active, in which
// case now is used for the duration.
func Recompute(l *ledger.Ledger, startedAt time.Time, endedAt *time.Time, now time.Time) Snapshot {
	userTurns := l.UserTurns()

	totalWords := 0
	totalResponseTime := 0.0
	for _, t := range userTurns {
		totalWords += CountWords(t.Message)
		if t.ResponseTime != nil {
			totalResponseTime += *t.ResponseTime
		}
	}

	// Guard the zero-user-turn case: the average must be 0, never a
	// division by zero.
	avgResponseTime := 0.0
	if len(userTurns) > 0 {
		avgResponseTime = totalResponseTime / float64(len(userTurns))
	}

	return Snapshot{
		TotalResponses:  len(userTurns),
		TotalWords:      totalWords,
		AvgResponseTime: avgResponseTime,
		SessionDuration: DurationMinutes(startedAt, endedAt, now),
	}
}

// DurationMinutes returns the elapsed session time in minutes, clamped to
// be non-negative.
func DurationMinutes(startedAt time.Time, endedAt *time.Time, now time.Time) float64 {
	end := now
	if endedAt != nil {
		end = *endedAt
	}
	minutes := end.Sub(startedAt).Minutes()
	if minutes < 0 {
		return 0
	}
	return minutes
}

// CountWords counts non-empty whitespace-delimited tokens.
func CountWords(message string) int {
	return len(strings.Fields(message))
}

// Merge applies a partial update key-wise onto the snapshot. Keys absent
// from the partial are kept unchanged; present keys overwrite.
func (s Snapshot) Merge(p Partial) Snapshot {
	if p.TotalResponses != nil {
		s.TotalResponses = *p.TotalResponses
	}
	if p.TotalWords != nil {
		s.TotalWords = *p.TotalWords
	}
	if p.AvgResponseTime != nil {
		s.AvgResponseTime = *p.AvgResponseTime
	}
	if p.SessionDuration != nil {
		s.SessionDuration = *p.SessionDuration
	}
	return s
}

// AvgWordsPerResponse is the mean word count per user response, with the
// response count floored at 1 so an empty session yields 0.
func (s Snapshot) AvgWordsPerResponse() float64 {
	responses := s.TotalResponses
	if responses < 1 {
		responses = 1
	}
	return float64(s.TotalWords) / float64(responses)
}
