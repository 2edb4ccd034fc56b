package types

import (
	"github.com/go-openapi/strfmt"
	"github.com/intervia/go-interview-api/internal/interview/feedback"
	"github.com/intervia/go-interview-api/internal/interview/ledger"
	"github.com/intervia/go-interview-api/internal/interview/metrics"
	"github.com/intervia/go-interview-api/internal/interview/scenario"
	"github.com/intervia/go-interview-api/internal/interview/session"
	"github.com/intervia/go-interview-api/internal/interview/user"
)

// UserResponse is the public view of an account. The password hash never
// leaves the server.
type UserResponse struct {
	ID                  string           `json:"id"`
	Email               string           `json:"email"`
	FirstName           string           `json:"first_name"`
	LastName            string           `json:"last_name"`
	PreferredDifficulty string           `json:"preferred_difficulty"`
	AnxietyLevel        int              `json:"anxiety_level"`
	CreatedAt           strfmt.DateTime  `json:"created_at"`
	LastLogin           *strfmt.DateTime `json:"last_login,omitempty"`
}

// NewUserResponse maps an account onto its public view.
func NewUserResponse(u *user.User) *UserResponse {
	resp := &UserResponse{
		ID:                  u.ID,
		Email:               u.Email,
		FirstName:           u.FirstName,
		LastName:            u.LastName,
		PreferredDifficulty: u.PreferredDifficulty,
		AnxietyLevel:        u.AnxietyLevel,
		CreatedAt:           strfmt.DateTime(u.CreatedAt),
	}
	if u.LastLogin != nil {
		t := strfmt.DateTime(*u.LastLogin)
		resp.LastLogin = &t
	}
	return resp
}

// AuthResponse is the login/registration response.
type AuthResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token,omitempty"`
}

// ScenarioResponse is the public view of a scenario.
type ScenarioResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Category           string          `json:"category"`
	DifficultyLevels   []string        `json:"difficulty_levels"`
	SampleQuestions    []string        `json:"sample_questions"`
	InterviewerAvatars []string        `json:"interviewer_avatars"`
	Environments       []string        `json:"environments"`
	IsActive           bool            `json:"is_active"`
	CreatedAt          strfmt.DateTime `json:"created_at"`
}

// NewScenarioResponse maps a scenario onto its public view.
func NewScenarioResponse(sc *scenario.Scenario) *ScenarioResponse {
	return &ScenarioResponse{
		ID:                 sc.ID,
		Name:               sc.Name,
		Description:        sc.Description,
		Category:           sc.Category,
		DifficultyLevels:   sc.DifficultyLevels,
		SampleQuestions:    sc.SampleQuestions,
		InterviewerAvatars: sc.InterviewerAvatars,
		Environments:       sc.Environments,
		IsActive:           sc.IsActive,
		CreatedAt:          strfmt.DateTime(sc.CreatedAt),
	}
}

// SessionResponse is the public view of a session, conversation history
// and metrics included.
type SessionResponse struct {
	ID                string           `json:"id"`
	UserID            string           `json:"user_id"`
	ScenarioID        string           `json:"scenario_id"`
	DifficultyLevel   string           `json:"difficulty_level"`
	InterviewerAvatar string           `json:"interviewer_avatar"`
	Environment       string           `json:"environment"`
	CustomDescription string           `json:"custom_description,omitempty"`
	Status            string           `json:"status"`
	StartedAt         strfmt.DateTime  `json:"started_at"`
	EndedAt           *strfmt.DateTime `json:"ended_at,omitempty"`
	History           []ledger.Turn    `json:"conversation_history"`
	Metrics           metrics.Snapshot `json:"performance_metrics"`
}

// NewSessionResponse maps a session onto its public view.
func NewSessionResponse(sess *session.Session) *SessionResponse {
	resp := &SessionResponse{
		ID:                sess.ID,
		UserID:            sess.UserID,
		ScenarioID:        sess.ScenarioID,
		DifficultyLevel:   sess.Config.DifficultyLevel,
		InterviewerAvatar: sess.Config.InterviewerAvatar,
		Environment:       sess.Config.Environment,
		CustomDescription: sess.Config.CustomDescription,
		Status:            string(sess.Status),
		StartedAt:         strfmt.DateTime(sess.StartedAt),
		History:           sess.Ledger.Turns(),
		Metrics:           sess.Metrics,
	}
	if sess.EndedAt != nil {
		t := strfmt.DateTime(*sess.EndedAt)
		resp.EndedAt = &t
	}
	return resp
}

// NewSessionListResponse maps a session list, preserving order.
func NewSessionListResponse(sessions []*session.Session) []*SessionResponse {
	out := make([]*SessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, NewSessionResponse(sess))
	}
	return out
}

// QuestionResponse carries a generated interviewer question.
type QuestionResponse struct {
	Question     string  `json:"question"`
	ResponseTime float64 `json:"response_time"`
	FromFallback bool    `json:"from_fallback"`
}

// ResponseQualityResponse is the lightweight per-answer signal returned
// with a submitted response.
type ResponseQualityResponse struct {
	WordCount    int `json:"word_count"`
	QualityScore int `json:"quality_score"`
}

// SubmitResponseResponse acknowledges a user answer with the refreshed
// metrics and the answer's quality signal.
type SubmitResponseResponse struct {
	Metrics metrics.Snapshot        `json:"performance_metrics"`
	Quality ResponseQualityResponse `json:"quality"`
}

// FeedbackResponse is the public view of a feedback record.
type FeedbackResponse struct {
	ID                  string          `json:"id"`
	SessionID           string          `json:"session_id"`
	OverallScore        float64         `json:"overall_score"`
	CommunicationScore  float64         `json:"communication_score"`
	ConfidenceScore     float64         `json:"confidence_score"`
	TechnicalScore      float64         `json:"technical_score"`
	Strengths           []string        `json:"strengths"`
	AreasForImprovement []string        `json:"areas_for_improvement"`
	SpecificSuggestions []string        `json:"specific_suggestions"`
	AvgResponseTime     float64         `json:"avg_response_time"`
	TotalWordsSpoken    int             `json:"total_words_spoken"`
	HesitationCount     int             `json:"hesitation_count"`
	CreatedAt           strfmt.DateTime `json:"created_at"`
}

// NewFeedbackResponse maps a feedback record onto its public view.
func NewFeedbackResponse(fb *feedback.Feedback) *FeedbackResponse {
	return &FeedbackResponse{
		ID:                  fb.ID,
		SessionID:           fb.SessionID,
		OverallScore:        fb.Scores.Overall,
		CommunicationScore:  fb.Scores.Communication,
		ConfidenceScore:     fb.Scores.Confidence,
		TechnicalScore:      fb.Scores.Technical,
		Strengths:           fb.Strengths,
		AreasForImprovement: fb.AreasForImprovement,
		SpecificSuggestions: fb.SpecificSuggestions,
		AvgResponseTime:     fb.AvgResponseTime,
		TotalWordsSpoken:    fb.TotalWordsSpoken,
		HesitationCount:     fb.HesitationCount,
		CreatedAt:           strfmt.DateTime(fb.CreatedAt),
	}
}

// CategoriesResponse lists the distinct scenario categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
