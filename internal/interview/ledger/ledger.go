package ledger

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/intervia/go-interview-api/internal/interview"
)

// Speaker identifies who produced a turn.
type Speaker string

const (
	SpeakerUser        Speaker = "user"
	SpeakerInterviewer Speaker = "interviewer"
)

// Valid reports whether the speaker is one of the two known values.
func (s Speaker) Valid() bool {
	return s == SpeakerUser || s == SpeakerInterviewer
}

// Turn is a single utterance within a session. Turns are immutable once
// appended to a ledger.
type Turn struct {
	Speaker      Speaker   `json:"speaker"`
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
	ResponseTime *float64  `json:"response_time,omitempty"` // seconds
}

// Ledger is the append-only, ordered record of all turns in a session.
// It has no delete or reorder operation.
type Ledger struct {
	turns []Turn
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// FromTurns rebuilds a ledger from stored turns, preserving order.
func FromTurns(turns []Turn) *Ledger {
	l := &Ledger{turns: make([]Turn, len(turns))}
	copy(l.turns, turns)
	return l
}

// Append adds a turn at the end of the ledger. The message must be
// non-empty and the speaker must be known. Timestamps are kept
// non-decreasing: an earlier timestamp than the last turn's is clamped
// forward so the ledger always reflects arrival order.
func (l *Ledger) Append(speaker Speaker, message string, at time.Time, responseTime *float64) (Turn, error) {
	if !speaker.Valid() {
		return Turn{}, fmt.Errorf("%w: unknown speaker %q", interview.ErrValidation, speaker)
	}
	if strings.TrimSpace(message) == "" {
		return Turn{}, fmt.Errorf("%w: message is required", interview.ErrValidation)
	}
	if responseTime != nil && *responseTime < 0 {
		return Turn{}, fmt.Errorf("%w: response_time must not be negative", interview.ErrValidation)
	}

	if n := len(l.turns); n > 0 && at.Before(l.turns[n-1].Timestamp) {
		at = l.turns[n-1].Timestamp
	}

	turn := Turn{
		Speaker:      speaker,
		Message:      message,
		Timestamp:    at,
		ResponseTime: responseTime,
	}
	l.turns = append(l.turns, turn)
	return turn, nil
}

// Turns returns a copy of all turns in append order.
func (l *Ledger) Turns() []Turn {
	out := make([]Turn, len(l.turns))
	copy(out, l.turns)
	return out
}

// Len returns the number of turns.
func (l *Ledger) Len() int {
	return len(l.turns)
}

// LastN returns up to n most recent turns in order. Used to bound the
// conversation context handed to the question provider.
func (l *Ledger) LastN(n int) []Turn {
	if n <= 0 || len(l.turns) == 0 {
		return nil
	}
	start := len(l.turns) - n
	if start < 0 {
		start = 0
	}
	out := make([]Turn, len(l.turns)-start)
	copy(out, l.turns[start:])
	return out
}

// UserTurns returns only the turns spoken by the user, in order.
func (l *Ledger) UserTurns() []Turn {
	var out []Turn
	for _, t := range l.turns {
		if t.Speaker == SpeakerUser {
			out = append(out, t)
		}
	}
	return out
}

// MarshalJSON serializes the ledger as a plain turn array. Serialization
// only happens at the storage boundary; in memory the ledger stays a
// structured type.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	if l.turns == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.turns)
}

// UnmarshalJSON restores a ledger from its stored turn array.
func (l *Ledger) UnmarshalJSON(data []byte) error {
	var turns []Turn
	if err := json.Unmarshal(data, &turns); err != nil {
		return err
	}
	l.turns = turns
	return nil
}
