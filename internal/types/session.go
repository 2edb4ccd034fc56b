package types

import (
	"fmt"
	"strings"

	"github.com/intervia/go-interview-api/internal/interview"
)

// PostCreateSessionPayload is the session creation request body.
type PostCreateSessionPayload struct {
	UserID            string `json:"user_id"`
	ScenarioID        string `json:"scenario_id"`
	DifficultyLevel   string `json:"difficulty_level"`
	InterviewerAvatar string `json:"interviewer_avatar,omitempty"`
	Environment       string `json:"environment,omitempty"`
	CustomDescription string `json:"custom_description,omitempty"`
}

func (p *PostCreateSessionPayload) Validate() error {
	if strings.TrimSpace(p.UserID) == "" {
		return fmt.Errorf("%w: user_id is required", interview.ErrValidation)
	}
	if strings.TrimSpace(p.ScenarioID) == "" {
		return fmt.Errorf("%w: scenario_id is required", interview.ErrValidation)
	}
	if strings.TrimSpace(p.DifficultyLevel) == "" {
		return fmt.Errorf("%w: difficulty_level is required", interview.ErrValidation)
	}
	return nil
}

// PostTurnPayload appends one conversation turn to a session.
type PostTurnPayload struct {
	Speaker      string   `json:"speaker"`
	Message      string   `json:"message"`
	ResponseTime *float64 `json:"response_time,omitempty"`
}

func (p *PostTurnPayload) Validate() error {
	if strings.TrimSpace(p.Speaker) == "" {
		return fmt.Errorf("%w: speaker is required", interview.ErrValidation)
	}
	if strings.TrimSpace(p.Message) == "" {
		return fmt.Errorf("%w: message is required", interview.ErrValidation)
	}
	return nil
}

// PutSessionMetricsPayload merges a partial metrics update into a
// session. Absent fields keep their stored values.
type PutSessionMetricsPayload struct {
	TotalResponses  *int     `json:"total_responses,omitempty"`
	TotalWords      *int     `json:"total_words,omitempty"`
	AvgResponseTime *float64 `json:"avg_response_time,omitempty"`
	SessionDuration *float64 `json:"session_duration,omitempty"`
}

func (p *PutSessionMetricsPayload) Validate() error {
	if p.TotalResponses != nil && *p.TotalResponses < 0 {
		return fmt.Errorf("%w: total_responses must not be negative", interview.ErrValidation)
	}
	if p.TotalWords != nil && *p.TotalWords < 0 {
		return fmt.Errorf("%w: total_words must not be negative", interview.ErrValidation)
	}
	if p.AvgResponseTime != nil && *p.AvgResponseTime < 0 {
		return fmt.Errorf("%w: avg_response_time must not be negative", interview.ErrValidation)
	}
	if p.SessionDuration != nil && *p.SessionDuration < 0 {
		return fmt.Errorf("%w: session_duration must not be negative", interview.ErrValidation)
	}
	return nil
}
