package feedback

import (
	"context"
	"fmt"

	"github.com/dropbox/godropbox/time2"
	"github.com/intervia/go-interview-api/internal/interview"
	"github.com/intervia/go-interview-api/internal/interview/scoring"
	"github.com/intervia/go-interview-api/internal/interview/session"
	"github.com/pkg/errors"
)

// Store is the persistence contract the service needs. Saving a second
// feedback for the same session must fail with interview.ErrConflict,
// backed by a uniqueness constraint on session id.
type Store interface {
	SaveFeedback(ctx context.Context, fb *Feedback) error
	GetFeedback(ctx context.Context, id string) (*Feedback, error)
	GetFeedbackBySession(ctx context.Context, sessionID string) (*Feedback, error)
}

// Service generates and serves feedback records.
type Service struct {
	store   Store
	rules   scoring.Rules
	catalog scoring.Catalog
	clock   time2.Clock
}

// NewService creates the feedback service.
func NewService(store Store, rules scoring.Rules, catalog scoring.Catalog, clock time2.Clock) *Service {
	return &Service{
		store:   store,
		rules:   rules,
		catalog: catalog,
		clock:   clock,
	}
}

// Create generates the one-shot feedback for a completed session. The
// existence check runs before generation so a duplicate request fails
// without touching the original record; the unique index on session id
// backs the check against concurrent creators.
func (s *Service) Create(ctx context.Context, sess *session.Session) (*Feedback, error) {
	if sess.Status != session.StatusCompleted {
		return nil, fmt.Errorf("%w: session is not completed", interview.ErrInvalidState)
	}

	existing, err := s.store.GetFeedbackBySession(ctx, sess.ID)
	if err != nil && !errors.Is(err, interview.ErrNotFound) {
		return nil, errors.Wrap(err, "check existing feedback")
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: feedback already exists for this session", interview.ErrConflict)
	}

	fb := Generate(sess.ID, sess.Metrics, s.rules, s.catalog, s.clock.Now())
	if err := s.store.SaveFeedback(ctx, fb); err != nil {
		return nil, errors.Wrap(err, "save feedback")
	}
	return fb, nil
}

// Get returns a feedback record by id.
func (s *Service) Get(ctx context.Context, id string) (*Feedback, error) {
	return s.store.GetFeedback(ctx, id)
}

// GetBySession returns the feedback for a session, or
// interview.ErrNotFound when none has been generated.
func (s *Service) GetBySession(ctx context.Context, sessionID string) (*Feedback, error) {
	return s.store.GetFeedbackBySession(ctx, sessionID)
}
