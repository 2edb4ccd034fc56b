package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/intervia/go-interview-api/internal/infra/storage"
	"github.com/intervia/go-interview-api/internal/interview"
	"github.com/intervia/go-interview-api/internal/interview/ledger"
	"github.com/intervia/go-interview-api/internal/interview/metrics"
	"github.com/intervia/go-interview-api/internal/interview/provider"
	"github.com/intervia/go-interview-api/internal/interview/session"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultQuestionTimeout bounds the external provider call. A timeout
	// is an ordinary failure path into the fallback catalog.
	DefaultQuestionTimeout = 3 * time.Second

	// lockTTL bounds how long a crashed request may hold a session lock.
	lockTTL = 10 * time.Second
)

// Service coordinates interview turns: session lifecycle, next-question
// generation and user-response submission. Every session mutation runs
// under the per-session lock and is persisted as one unit.
type Service struct {
	sessions  storage.SessionStore
	scenarios storage.ScenarioStore
	users     storage.UserStore
	locker    storage.SessionLocker
	provider  provider.QuestionProvider
	clock     time2.Clock

	questionTimeout time.Duration
}

// NewService creates the orchestrator.
func NewService(
	sessions storage.SessionStore,
	scenarios storage.ScenarioStore,
	users storage.UserStore,
	locker storage.SessionLocker,
	questionProvider provider.QuestionProvider,
	clock time2.Clock,
	questionTimeout time.Duration,
) *Service {
	if questionTimeout <= 0 {
		questionTimeout = DefaultQuestionTimeout
	}
	return &Service{
		sessions:        sessions,
		scenarios:       scenarios,
		users:           users,
		locker:          locker,
		provider:        questionProvider,
		clock:           clock,
		questionTimeout: questionTimeout,
	}
}

// CreateSession validates the references and configuration and persists a
// new active session.
func (s *Service) CreateSession(ctx context.Context, userID, scenarioID string, cfg session.Config) (*session.Session, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "resolve user")
	}
	sc, err := s.scenarios.GetScenario(ctx, scenarioID)
	if err != nil {
		return nil, errors.Wrap(err, "resolve scenario")
	}

	sess, err := session.New(userID, scenarioID, cfg, sc.DifficultyLevels, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.sessions.SaveSession(ctx, sess); err != nil {
		return nil, errors.Wrap(err, "persist session")
	}

	log.Info().
		Str("session_id", sess.ID).
		Str("scenario_id", scenarioID).
		Str("difficulty", cfg.DifficultyLevel).
		Msg("Interview session created")
	return sess, nil
}

// GetSession returns one session.
func (s *Service) GetSession(ctx context.Context, id string) (*session.Session, error) {
	return s.sessions.GetSession(ctx, id)
}

// ListUserSessions returns the user's session history, newest first.
func (s *Service) ListUserSessions(ctx context.Context, userID string, status session.Status, limit int) ([]*session.Session, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "resolve user")
	}
	return s.sessions.ListSessionsByUser(ctx, userID, status, limit)
}

// RecordTurn appends a conversation turn on behalf of an API caller.
func (s *Service) RecordTurn(ctx context.Context, sessionID string, speaker ledger.Speaker, message string, responseTime *float64) (*session.Session, error) {
	return s.mutateSession(ctx, sessionID, func(sess *session.Session) error {
		_, err := sess.RecordTurn(speaker, message, responseTime, s.clock.Now())
		return err
	})
}

// EndSession completes the session and runs the final metrics recompute.
func (s *Service) EndSession(ctx context.Context, sessionID string) (*session.Session, error) {
	sess, err := s.mutateSession(ctx, sessionID, func(sess *session.Session) error {
		return sess.End(s.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	countSessionEnded(string(session.StatusCompleted))
	return sess, nil
}

// AbandonSession marks the session abandoned under the same guard as End.
func (s *Service) AbandonSession(ctx context.Context, sessionID string) (*session.Session, error) {
	sess, err := s.mutateSession(ctx, sessionID, func(sess *session.Session) error {
		return sess.Abandon(s.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	countSessionEnded(string(session.StatusAbandoned))
	return sess, nil
}

// UpdateSessionMetrics merges an out-of-band partial metrics update.
func (s *Service) UpdateSessionMetrics(ctx context.Context, sessionID string, partial metrics.Partial) (*session.Session, error) {
	return s.mutateSession(ctx, sessionID, func(sess *session.Session) error {
		sess.UpdateMetrics(partial)
		return nil
	})
}

// NextQuestionResult carries the generated question and how it was made.
type NextQuestionResult struct {
	Question     string
	ResponseTime float64 // seconds spent generating
	FromFallback bool
}

// NextQuestion produces the next interviewer question and appends it to
// the ledger as an interviewer turn. Provider failures (error, timeout or
// empty result) are logged and recovered through the fallback catalog;
// they never propagate to the caller.
func (s *Service) NextQuestion(ctx context.Context, sessionID string) (*NextQuestionResult, error) {
	var result NextQuestionResult

	_, err := s.mutateSession(ctx, sessionID, func(sess *session.Session) error {
		sc, err := s.scenarios.GetScenario(ctx, sess.ScenarioID)
		if err != nil {
			return errors.Wrap(err, "resolve scenario")
		}

		question, elapsed, fromFallback := s.generateQuestion(ctx, sess, sc.Name, sc.Description)
		responseTime := elapsed.Seconds()

		if _, err := sess.RecordTurn(ledger.SpeakerInterviewer, question, &responseTime, s.clock.Now()); err != nil {
			return err
		}

		result = NextQuestionResult{
			Question:     question,
			ResponseTime: responseTime,
			FromFallback: fromFallback,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Service) generateQuestion(ctx context.Context, sess *session.Session, scenarioName, scenarioDescription string) (string, time.Duration, bool) {
	providerCtx, cancel := context.WithTimeout(ctx, s.questionTimeout)
	defer cancel()

	started := s.clock.Now()
	question, err := s.provider.NextQuestion(providerCtx, provider.Context{
		ScenarioName:        scenarioName,
		ScenarioDescription: scenarioDescription,
		DifficultyLevel:     sess.Config.DifficultyLevel,
		InterviewerAvatar:   sess.Config.InterviewerAvatar,
		CustomDescription:   sess.Config.CustomDescription,
		History:             sess.Ledger.Turns(),
	})
	elapsed := s.clock.Now().Sub(started)

	if err != nil || question == "" {
		log.Warn().
			Err(err).
			Str("session_id", sess.ID).
			Dur("elapsed", elapsed).
			Msg("Question provider failed, using fallback catalog")
		observeQuestionLatency("fallback", elapsed)
		return FallbackQuestion(scenarioName, sess.Ledger.Len()), elapsed, true
	}

	observeQuestionLatency("provider", elapsed)
	return question, elapsed, false
}

// SubmitResponse records a user turn and triggers the metrics recompute.
// An empty message fails with interview.ErrValidation before any state is
// touched.
func (s *Service) SubmitResponse(ctx context.Context, sessionID, message string, responseTime *float64) (*session.Session, error) {
	return s.RecordTurn(ctx, sessionID, ledger.SpeakerUser, message, responseTime)
}

// mutateSession runs fn on a freshly-read session under the per-session
// lock, then persists the result. Ledger, metrics and status changes
// commit together or not at all.
func (s *Service) mutateSession(ctx context.Context, sessionID string, fn func(*session.Session) error) (*session.Session, error) {
	acquired, err := s.locker.AcquireLock(ctx, sessionID, lockTTL)
	if err != nil {
		return nil, errors.Wrap(err, "acquire session lock")
	}
	if !acquired {
		return nil, fmt.Errorf("%w: session is being modified by another request", interview.ErrConflict)
	}
	defer func() {
		if err := s.locker.ReleaseLock(ctx, sessionID); err != nil {
			log.Warn().Err(err).Str("session_id", sessionID).Msg("Failed to release session lock")
		}
	}()

	sess, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	if err := s.sessions.UpdateSession(ctx, sess); err != nil {
		return nil, errors.Wrap(err, "persist session")
	}
	return sess, nil
}
