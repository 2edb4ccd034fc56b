package stats

import (
	"context"
	"math"

	"github.com/intervia/go-interview-api/internal/infra/storage"
	"github.com/intervia/go-interview-api/internal/interview"
	"github.com/intervia/go-interview-api/internal/interview/feedback"
	"github.com/intervia/go-interview-api/internal/interview/session"
	"github.com/pkg/errors"
)

// trendWindow is the number of sessions compared at each end of the
// history to estimate the improvement trend.
const trendWindow = 3

// UserStats aggregates a user's completed interview history.
type UserStats struct {
	TotalSessions    int     `json:"total_sessions"`
	AvgScore         float64 `json:"avg_score"`
	TotalHours       float64 `json:"total_hours"`
	ImprovementTrend float64 `json:"improvement_trend"`
}

// Service computes per-user aggregate statistics.
type Service struct {
	sessions storage.SessionStore
	users    storage.UserStore
	feedback feedback.Store
}

// NewService creates the stats service.
func NewService(sessions storage.SessionStore, users storage.UserStore, feedbackStore feedback.Store) *Service {
	return &Service{
		sessions: sessions,
		users:    users,
		feedback: feedbackStore,
	}
}

// UserStats aggregates all completed sessions of the user. Scores come
// from the sessions' feedback records, ordered oldest first for the
// trend; sessions without feedback contribute time but no score.
func (s *Service) UserStats(ctx context.Context, userID string) (*UserStats, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "resolve user")
	}

	sessions, err := s.sessions.ListSessionsByUser(ctx, userID, session.StatusCompleted, 0)
	if err != nil {
		return nil, errors.Wrap(err, "list completed sessions")
	}

	result := &UserStats{TotalSessions: len(sessions)}

	var totalMinutes float64
	var scores []float64

	// ListSessionsByUser returns newest first; walk backwards so the
	// trend compares early sessions against recent ones.
	for i := len(sessions) - 1; i >= 0; i-- {
		sess := sessions[i]
		totalMinutes += sess.Metrics.SessionDuration

		fb, err := s.feedback.GetFeedbackBySession(ctx, sess.ID)
		if err != nil {
			if errors.Is(err, interview.ErrNotFound) {
				continue
			}
			return nil, errors.Wrap(err, "resolve session feedback")
		}
		scores = append(scores, fb.Scores.Overall)
	}

	result.TotalHours = round2(totalMinutes / 60)

	if len(scores) > 0 {
		result.AvgScore = round2(mean(scores))
	}
	if len(scores) >= 2*trendWindow {
		first := mean(scores[:trendWindow])
		last := mean(scores[len(scores)-trendWindow:])
		result.ImprovementTrend = round2(last - first)
	}

	return result, nil
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
