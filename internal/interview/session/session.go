package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/intervia/go-interview-api/internal/interview"
	"github.com/intervia/go-interview-api/internal/interview/ledger"
	"github.com/intervia/go-interview-api/internal/interview/metrics"
)

// Status is the lifecycle state of an interview session.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusAbandoned Status = "abandoned"
)

// Terminal reports whether no further transitions are allowed.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusAbandoned
}

// canTransition is the explicit transition table. Both terminal states are
// reachable only from active; terminal states allow nothing.
func canTransition(current, next Status) bool {
	switch current {
	case StatusActive:
		return next == StatusCompleted || next == StatusAbandoned
	default:
		return false
	}
}

// Defaults applied when the caller leaves configuration fields empty,
// matching the seeded scenario vocabulary.
const (
	DefaultInterviewerAvatar = "profesional"
	DefaultEnvironment       = "oficina"
)

// Config is the immutable per-session configuration. Fields are fixed at
// creation; there is no post-construction override path.
type Config struct {
	DifficultyLevel   string `json:"difficulty_level"`
	InterviewerAvatar string `json:"interviewer_avatar"`
	Environment       string `json:"environment"`
	CustomDescription string `json:"custom_description,omitempty"`
}

// Session is one interview attempt by one user against one scenario. It
// owns its conversation ledger and derived metrics snapshot.
type Session struct {
	ID         string
	UserID     string
	ScenarioID string
	Config     Config

	Status    Status
	StartedAt time.Time
	EndedAt   *time.Time

	Ledger  *ledger.Ledger
	Metrics metrics.Snapshot

	// Version supports optimistic concurrency at the storage boundary.
	// Ledger, metrics and status are written as one unit guarded by it.
	Version int64
}

// New creates an active session after validating the configuration against
// the scenario's declared difficulty levels.
func New(userID, scenarioID string, cfg Config, allowedDifficulties []string, now time.Time) (*Session, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user_id is required", interview.ErrValidation)
	}
	if strings.TrimSpace(scenarioID) == "" {
		return nil, fmt.Errorf("%w: scenario_id is required", interview.ErrValidation)
	}
	if strings.TrimSpace(cfg.DifficultyLevel) == "" {
		return nil, fmt.Errorf("%w: difficulty_level is required", interview.ErrValidation)
	}
	if !contains(allowedDifficulties, cfg.DifficultyLevel) {
		return nil, fmt.Errorf("%w: invalid difficulty level for this scenario", interview.ErrValidation)
	}
	if cfg.InterviewerAvatar == "" {
		cfg.InterviewerAvatar = DefaultInterviewerAvatar
	}
	if cfg.Environment == "" {
		cfg.Environment = DefaultEnvironment
	}

	return &Session{
		ID:         uuid.NewString(),
		UserID:     userID,
		ScenarioID: scenarioID,
		Config:     cfg,
		Status:     StatusActive,
		StartedAt:  now,
		Ledger:     ledger.New(),
		Metrics:    metrics.Snapshot{},
		Version:    1,
	}, nil
}

// RecordTurn appends a turn to the ledger. Allowed only while the session
// is active. A user turn triggers a full metrics recompute.
func (s *Session) RecordTurn(speaker ledger.Speaker, message string, responseTime *float64, now time.Time) (ledger.Turn, error) {
	if s.Status != StatusActive {
		return ledger.Turn{}, fmt.Errorf("%w: session is not active", interview.ErrInvalidState)
	}

	turn, err := s.Ledger.Append(speaker, message, now, responseTime)
	if err != nil {
		return ledger.Turn{}, err
	}

	if speaker == ledger.SpeakerUser {
		s.Metrics = metrics.Recompute(s.Ledger, s.StartedAt, s.EndedAt, now)
	}
	return turn, nil
}

// End completes the session: sets the end timestamp exactly once and runs
// a final metrics recompute. Ending a session that is not active fails
// with ErrInvalidState and leaves the session untouched.
func (s *Session) End(now time.Time) error {
	if err := s.transition(StatusCompleted, now); err != nil {
		return err
	}
	s.Metrics = metrics.Recompute(s.Ledger, s.StartedAt, s.EndedAt, now)
	return nil
}

// Abandon marks the session abandoned under the same guard as End.
func (s *Session) Abandon(now time.Time) error {
	return s.transition(StatusAbandoned, now)
}

func (s *Session) transition(next Status, now time.Time) error {
	if !canTransition(s.Status, next) {
		return fmt.Errorf("%w: session is not active", interview.ErrInvalidState)
	}
	s.Status = next
	end := now
	s.EndedAt = &end
	return nil
}

// UpdateMetrics merges an out-of-band partial metrics update into the
// current snapshot. Merge semantics, not replace.
func (s *Session) UpdateMetrics(p metrics.Partial) {
	s.Metrics = s.Metrics.Merge(p)
}

// DurationMinutes reports the elapsed session time in minutes.
func (s *Session) DurationMinutes(now time.Time) float64 {
	return metrics.DurationMinutes(s.StartedAt, s.EndedAt, now)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
