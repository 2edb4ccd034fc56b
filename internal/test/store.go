package test

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/intervia/go-interview-api/internal/interview"
	"github.com/intervia/go-interview-api/internal/interview/feedback"
	"github.com/intervia/go-interview-api/internal/interview/ledger"
	"github.com/intervia/go-interview-api/internal/interview/scenario"
	"github.com/intervia/go-interview-api/internal/interview/session"
	"github.com/intervia/go-interview-api/internal/interview/user"
)

// Store is the in-memory implementation of every persistence contract,
// used by service and handler tests. It mirrors the conflict semantics
// of the real store: optimistic versioning on sessions and a uniqueness
// guarantee on per-session feedback.
type Store struct {
	mu sync.Mutex

	sessions  map[string]*session.Session
	users     map[string]*user.User
	scenarios map[string]*scenario.Scenario
	feedback  map[string]*feedback.Feedback

	// FailNextUpdate forces the next UpdateSession call to fail with a
	// version conflict.
	FailNextUpdate bool
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		sessions:  make(map[string]*session.Session),
		users:     make(map[string]*user.User),
		scenarios: make(map[string]*scenario.Scenario),
		feedback:  make(map[string]*feedback.Feedback),
	}
}

func (s *Store) SaveSession(_ context.Context, sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = copySession(sess)
	return nil
}

func (s *Store) GetSession(_ context.Context, id string) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: session %s", interview.ErrNotFound, id)
	}
	return copySession(sess), nil
}

func (s *Store) UpdateSession(_ context.Context, sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailNextUpdate {
		s.FailNextUpdate = false
		return fmt.Errorf("%w: session was modified concurrently", interview.ErrConflict)
	}

	stored, ok := s.sessions[sess.ID]
	if !ok {
		return fmt.Errorf("%w: session %s", interview.ErrNotFound, sess.ID)
	}
	if stored.Version != sess.Version {
		return fmt.Errorf("%w: session was modified concurrently", interview.ErrConflict)
	}
	sess.Version++
	s.sessions[sess.ID] = copySession(sess)
	return nil
}

func (s *Store) ListSessionsByUser(_ context.Context, userID string, status session.Status, limit int) ([]*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*session.Session
	for _, sess := range s.sessions {
		if sess.UserID == userID && sess.Status == status {
			out = append(out, copySession(sess))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) SaveUser(_ context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email && existing.ID != u.ID {
			return fmt.Errorf("%w: email already registered", interview.ErrConflict)
		}
	}
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *Store) GetUser(_ context.Context, id string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", interview.ErrNotFound, id)
	}
	cp := *u
	return &cp, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: user with email %s", interview.ErrNotFound, email)
}

func (s *Store) UpdateUser(_ context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return fmt.Errorf("%w: user %s", interview.ErrNotFound, u.ID)
	}
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *Store) SaveScenario(_ context.Context, sc *scenario.Scenario) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *sc
	s.scenarios[sc.ID] = &cp
	return nil
}

func (s *Store) GetScenario(_ context.Context, id string) (*scenario.Scenario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc, ok := s.scenarios[id]
	if !ok {
		return nil, fmt.Errorf("%w: scenario %s", interview.ErrNotFound, id)
	}
	cp := *sc
	return &cp, nil
}

func (s *Store) ListScenarios(_ context.Context, category string, activeOnly bool) ([]*scenario.Scenario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*scenario.Scenario
	for _, sc := range s.scenarios {
		if category != "" && sc.Category != category {
			continue
		}
		if activeOnly && !sc.IsActive {
			continue
		}
		cp := *sc
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *Store) ListCategories(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool)
	var out []string
	for _, sc := range s.scenarios {
		if !seen[sc.Category] {
			seen[sc.Category] = true
			out = append(out, sc.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (s *Store) CountScenarios(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.scenarios), nil
}

func (s *Store) SaveFeedback(_ context.Context, fb *feedback.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.feedback {
		if existing.SessionID == fb.SessionID {
			return fmt.Errorf("%w: feedback already exists for session %s", interview.ErrConflict, fb.SessionID)
		}
	}
	cp := *fb
	s.feedback[fb.ID] = &cp
	return nil
}

func (s *Store) GetFeedback(_ context.Context, id string) (*feedback.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fb, ok := s.feedback[id]
	if !ok {
		return nil, fmt.Errorf("%w: feedback %s", interview.ErrNotFound, id)
	}
	cp := *fb
	return &cp, nil
}

func (s *Store) GetFeedbackBySession(_ context.Context, sessionID string) (*feedback.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, fb := range s.feedback {
		if fb.SessionID == sessionID {
			cp := *fb
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: feedback for session %s", interview.ErrNotFound, sessionID)
}

func copySession(sess *session.Session) *session.Session {
	cp := *sess
	cp.Ledger = ledger.FromTurns(sess.Ledger.Turns())
	if sess.EndedAt != nil {
		end := *sess.EndedAt
		cp.EndedAt = &end
	}
	return &cp
}
