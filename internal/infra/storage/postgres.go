package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/intervia/go-interview-api/internal/interview"
	"github.com/intervia/go-interview-api/internal/interview/feedback"
	"github.com/intervia/go-interview-api/internal/interview/ledger"
	"github.com/intervia/go-interview-api/internal/interview/scenario"
	"github.com/intervia/go-interview-api/internal/interview/scoring"
	"github.com/intervia/go-interview-api/internal/interview/session"
	"github.com/intervia/go-interview-api/internal/interview/user"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

const uniqueViolation = pq.ErrorCode("23505")

// PostgresStore implements the persistence contracts over database/sql.
// Structured sub-objects (ledger, metrics, option lists, commentary) are
// serialized to JSONB only here, at the storage boundary.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates the store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

var (
	_ SessionStore   = (*PostgresStore)(nil)
	_ UserStore      = (*PostgresStore)(nil)
	_ ScenarioStore  = (*PostgresStore)(nil)
	_ feedback.Store = (*PostgresStore)(nil)
)

// --- sessions ---

func (s *PostgresStore) SaveSession(ctx context.Context, sess *session.Session) error {
	history, metricsJSON, err := marshalSessionBlobs(sess)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (
			id, user_id, scenario_id, difficulty_level, interviewer_avatar,
			environment, custom_description, status, started_at, ended_at,
			conversation_history, performance_metrics, version
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		sess.ID, sess.UserID, sess.ScenarioID,
		sess.Config.DifficultyLevel, sess.Config.InterviewerAvatar,
		sess.Config.Environment, nullString(sess.Config.CustomDescription),
		string(sess.Status), sess.StartedAt, nullTime(sess.EndedAt),
		history, metricsJSON, sess.Version,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: session already exists", interview.ErrConflict)
	}
	return errors.Wrap(err, "insert session")
}

func (s *PostgresStore) GetSession(ctx context.Context, id string) (*session.Session, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, scenario_id, difficulty_level, interviewer_avatar,
		       environment, COALESCE(custom_description, ''), status, started_at,
		       ended_at, conversation_history, performance_metrics, version
		FROM sessions WHERE id = $1`, id)

	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: session %s", interview.ErrNotFound, id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "get session")
	}
	return sess, nil
}

// UpdateSession writes ledger, metrics, status and timestamps as one unit
// guarded by the stored version. A stale version means a concurrent writer
// won; the caller gets interview.ErrConflict and must re-read.
func (s *PostgresStore) UpdateSession(ctx context.Context, sess *session.Session) error {
	history, metricsJSON, err := marshalSessionBlobs(sess)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE sessions SET
			status = $1, ended_at = $2, conversation_history = $3,
			performance_metrics = $4, version = version + 1
		WHERE id = $5 AND version = $6`,
		string(sess.Status), nullTime(sess.EndedAt), history, metricsJSON,
		sess.ID, sess.Version,
	)
	if err != nil {
		return errors.Wrap(err, "update session")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "update session rows affected")
	}
	if affected == 0 {
		return fmt.Errorf("%w: session %s was modified concurrently", interview.ErrConflict, sess.ID)
	}
	sess.Version++
	return nil
}

func (s *PostgresStore) ListSessionsByUser(ctx context.Context, userID string, status session.Status, limit int) ([]*session.Session, error) {
	// limit <= 0 means unbounded; LIMIT NULL disables the cap.
	var rowLimit interface{}
	if limit > 0 {
		rowLimit = limit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, scenario_id, difficulty_level, interviewer_avatar,
		       environment, COALESCE(custom_description, ''), status, started_at,
		       ended_at, conversation_history, performance_metrics, version
		FROM sessions
		WHERE user_id = $1 AND status = $2
		ORDER BY started_at DESC
		LIMIT $3`, userID, string(status), rowLimit)
	if err != nil {
		return nil, errors.Wrap(err, "list sessions")
	}
	defer rows.Close()

	var out []*session.Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan session")
		}
		out = append(out, sess)
	}
	return out, errors.Wrap(rows.Err(), "iterate sessions")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSession(row rowScanner) (*session.Session, error) {
	var (
		sess        session.Session
		custom      string
		status      string
		endedAt     sql.NullTime
		historyJSON []byte
		metricsJSON []byte
	)
	err := row.Scan(
		&sess.ID, &sess.UserID, &sess.ScenarioID,
		&sess.Config.DifficultyLevel, &sess.Config.InterviewerAvatar,
		&sess.Config.Environment, &custom, &status, &sess.StartedAt,
		&endedAt, &historyJSON, &metricsJSON, &sess.Version,
	)
	if err != nil {
		return nil, err
	}
	sess.Config.CustomDescription = custom
	sess.Status = session.Status(status)
	if endedAt.Valid {
		t := endedAt.Time
		sess.EndedAt = &t
	}

	l := ledger.New()
	if len(historyJSON) > 0 {
		if err := json.Unmarshal(historyJSON, l); err != nil {
			return nil, errors.Wrap(err, "unmarshal conversation history")
		}
	}
	sess.Ledger = l

	if len(metricsJSON) > 0 {
		if err := json.Unmarshal(metricsJSON, &sess.Metrics); err != nil {
			return nil, errors.Wrap(err, "unmarshal performance metrics")
		}
	}
	return &sess, nil
}

func marshalSessionBlobs(sess *session.Session) ([]byte, []byte, error) {
	history, err := json.Marshal(sess.Ledger)
	if err != nil {
		return nil, nil, errors.Wrap(err, "marshal conversation history")
	}
	metricsJSON, err := json.Marshal(sess.Metrics)
	if err != nil {
		return nil, nil, errors.Wrap(err, "marshal performance metrics")
	}
	return history, metricsJSON, nil
}

// --- users ---

func (s *PostgresStore) SaveUser(ctx context.Context, u *user.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (
			id, email, password_hash, first_name, last_name,
			preferred_difficulty, anxiety_level, created_at, last_login
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName,
		u.PreferredDifficulty, u.AnxietyLevel, u.CreatedAt, nullTime(u.LastLogin),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: email already registered", interview.ErrConflict)
	}
	return errors.Wrap(err, "insert user")
}

func (s *PostgresStore) GetUser(ctx context.Context, id string) (*user.User, error) {
	return s.getUser(ctx, `WHERE id = $1`, id)
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.getUser(ctx, `WHERE email = $1`, email)
}

func (s *PostgresStore) getUser(ctx context.Context, where string, arg interface{}) (*user.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, first_name, last_name,
		       preferred_difficulty, anxiety_level, created_at, last_login
		FROM users `+where, arg)

	var (
		u         user.User
		lastLogin sql.NullTime
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.PreferredDifficulty, &u.AnxietyLevel, &u.CreatedAt, &lastLogin,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: user", interview.ErrNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "get user")
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLogin = &t
	}
	return &u, nil
}

func (s *PostgresStore) UpdateUser(ctx context.Context, u *user.User) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE users SET
			password_hash = $1, first_name = $2, last_name = $3,
			preferred_difficulty = $4, anxiety_level = $5, last_login = $6
		WHERE id = $7`,
		u.PasswordHash, u.FirstName, u.LastName,
		u.PreferredDifficulty, u.AnxietyLevel, nullTime(u.LastLogin), u.ID,
	)
	if err != nil {
		return errors.Wrap(err, "update user")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "update user rows affected")
	}
	if affected == 0 {
		return fmt.Errorf("%w: user %s", interview.ErrNotFound, u.ID)
	}
	return nil
}

// --- scenarios ---

func (s *PostgresStore) SaveScenario(ctx context.Context, sc *scenario.Scenario) error {
	levels, questions, avatars, environments, err := marshalScenarioLists(sc)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO scenarios (
			id, name, description, category, difficulty_levels,
			sample_questions, interviewer_avatars, environments,
			is_active, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		sc.ID, sc.Name, sc.Description, sc.Category,
		levels, questions, avatars, environments,
		sc.IsActive, sc.CreatedAt,
	)
	return errors.Wrap(err, "insert scenario")
}

func (s *PostgresStore) GetScenario(ctx context.Context, id string) (*scenario.Scenario, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, category, difficulty_levels,
		       sample_questions, interviewer_avatars, environments,
		       is_active, created_at
		FROM scenarios WHERE id = $1`, id)

	sc, err := scanScenario(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: scenario %s", interview.ErrNotFound, id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "get scenario")
	}
	return sc, nil
}

func (s *PostgresStore) ListScenarios(ctx context.Context, category string, activeOnly bool) ([]*scenario.Scenario, error) {
	query := `
		SELECT id, name, description, category, difficulty_levels,
		       sample_questions, interviewer_avatars, environments,
		       is_active, created_at
		FROM scenarios WHERE 1=1`
	args := []interface{}{}
	if activeOnly {
		query += ` AND is_active = true`
	}
	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(` AND category = $%d`, len(args))
	}
	query += ` ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list scenarios")
	}
	defer rows.Close()

	var out []*scenario.Scenario
	for rows.Next() {
		sc, err := scanScenario(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan scenario")
		}
		out = append(out, sc)
	}
	return out, errors.Wrap(rows.Err(), "iterate scenarios")
}

func (s *PostgresStore) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT category FROM scenarios ORDER BY category`)
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, errors.Wrap(err, "scan category")
		}
		out = append(out, category)
	}
	return out, errors.Wrap(rows.Err(), "iterate categories")
}

func (s *PostgresStore) CountScenarios(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scenarios`).Scan(&count)
	return count, errors.Wrap(err, "count scenarios")
}

func scanScenario(row rowScanner) (*scenario.Scenario, error) {
	var (
		sc           scenario.Scenario
		levels       []byte
		questions    []byte
		avatars      []byte
		environments []byte
	)
	err := row.Scan(
		&sc.ID, &sc.Name, &sc.Description, &sc.Category,
		&levels, &questions, &avatars, &environments,
		&sc.IsActive, &sc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	for _, field := range []struct {
		raw  []byte
		dest *[]string
	}{
		{levels, &sc.DifficultyLevels},
		{questions, &sc.SampleQuestions},
		{avatars, &sc.InterviewerAvatars},
		{environments, &sc.Environments},
	} {
		if len(field.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(field.raw, field.dest); err != nil {
			return nil, errors.Wrap(err, "unmarshal scenario options")
		}
	}
	return &sc, nil
}

func marshalScenarioLists(sc *scenario.Scenario) (levels, questions, avatars, environments []byte, err error) {
	if levels, err = json.Marshal(sc.DifficultyLevels); err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "marshal difficulty levels")
	}
	if questions, err = json.Marshal(sc.SampleQuestions); err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "marshal sample questions")
	}
	if avatars, err = json.Marshal(sc.InterviewerAvatars); err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "marshal interviewer avatars")
	}
	if environments, err = json.Marshal(sc.Environments); err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "marshal environments")
	}
	return levels, questions, avatars, environments, nil
}

// --- feedback ---

func (s *PostgresStore) SaveFeedback(ctx context.Context, fb *feedback.Feedback) error {
	strengths, improvements, suggestions, err := marshalFeedbackLists(fb)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO feedback (
			id, session_id, overall_score, communication_score,
			confidence_score, technical_score, strengths,
			areas_for_improvement, specific_suggestions,
			avg_response_time, total_words_spoken, hesitation_count, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		fb.ID, fb.SessionID,
		fb.Scores.Overall, fb.Scores.Communication,
		fb.Scores.Confidence, fb.Scores.Technical,
		strengths, improvements, suggestions,
		fb.AvgResponseTime, fb.TotalWordsSpoken, fb.HesitationCount, fb.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: feedback already exists for this session", interview.ErrConflict)
	}
	return errors.Wrap(err, "insert feedback")
}

func (s *PostgresStore) GetFeedback(ctx context.Context, id string) (*feedback.Feedback, error) {
	return s.getFeedback(ctx, `WHERE id = $1`, id)
}

func (s *PostgresStore) GetFeedbackBySession(ctx context.Context, sessionID string) (*feedback.Feedback, error) {
	return s.getFeedback(ctx, `WHERE session_id = $1`, sessionID)
}

func (s *PostgresStore) getFeedback(ctx context.Context, where string, arg interface{}) (*feedback.Feedback, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, session_id, overall_score, communication_score,
		       confidence_score, technical_score, strengths,
		       areas_for_improvement, specific_suggestions,
		       avg_response_time, total_words_spoken, hesitation_count, created_at
		FROM feedback `+where, arg)

	var (
		fb           feedback.Feedback
		scores       scoring.Scores
		strengths    []byte
		improvements []byte
		suggestions  []byte
	)
	err := row.Scan(
		&fb.ID, &fb.SessionID,
		&scores.Overall, &scores.Communication, &scores.Confidence, &scores.Technical,
		&strengths, &improvements, &suggestions,
		&fb.AvgResponseTime, &fb.TotalWordsSpoken, &fb.HesitationCount, &fb.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: feedback", interview.ErrNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "get feedback")
	}
	fb.Scores = scores

	for _, field := range []struct {
		raw  []byte
		dest *[]string
	}{
		{strengths, &fb.Strengths},
		{improvements, &fb.AreasForImprovement},
		{suggestions, &fb.SpecificSuggestions},
	} {
		if len(field.raw) == 0 {
			*field.dest = []string{}
			continue
		}
		if err := json.Unmarshal(field.raw, field.dest); err != nil {
			return nil, errors.Wrap(err, "unmarshal feedback lists")
		}
	}
	return &fb, nil
}

func marshalFeedbackLists(fb *feedback.Feedback) (strengths, improvements, suggestions []byte, err error) {
	if strengths, err = json.Marshal(orEmpty(fb.Strengths)); err != nil {
		return nil, nil, nil, errors.Wrap(err, "marshal strengths")
	}
	if improvements, err = json.Marshal(orEmpty(fb.AreasForImprovement)); err != nil {
		return nil, nil, nil, errors.Wrap(err, "marshal areas for improvement")
	}
	if suggestions, err = json.Marshal(orEmpty(fb.SpecificSuggestions)); err != nil {
		return nil, nil, nil, errors.Wrap(err, "marshal specific suggestions")
	}
	return strengths, improvements, suggestions, nil
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

// --- helpers ---

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
