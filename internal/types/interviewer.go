package types

import (
	"fmt"
	"strings"

	"github.com/intervia/go-interview-api/internal/interview"
)

// PostQuestionPayload requests the next interviewer question for a
// session.
type PostQuestionPayload struct {
	SessionID string `json:"session_id"`
}

func (p *PostQuestionPayload) Validate() error {
	if strings.TrimSpace(p.SessionID) == "" {
		return fmt.Errorf("%w: session_id is required", interview.ErrValidation)
	}
	return nil
}

// PostResponsePayload submits a user answer for a session.
type PostResponsePayload struct {
	SessionID    string   `json:"session_id"`
	Message      string   `json:"message"`
	ResponseTime *float64 `json:"response_time,omitempty"`
}

func (p *PostResponsePayload) Validate() error {
	if strings.TrimSpace(p.SessionID) == "" {
		return fmt.Errorf("%w: session_id is required", interview.ErrValidation)
	}
	if strings.TrimSpace(p.Message) == "" {
		return fmt.Errorf("%w: message is required", interview.ErrValidation)
	}
	if p.ResponseTime != nil && *p.ResponseTime < 0 {
		return fmt.Errorf("%w: response_time must not be negative", interview.ErrValidation)
	}
	return nil
}

// PostFeedbackPayload requests feedback generation for a completed
// session.
type PostFeedbackPayload struct {
	SessionID string `json:"session_id"`
}

func (p *PostFeedbackPayload) Validate() error {
	if strings.TrimSpace(p.SessionID) == "" {
		return fmt.Errorf("%w: session_id is required", interview.ErrValidation)
	}
	return nil
}

// PostCreateScenarioPayload is the scenario creation request body.
type PostCreateScenarioPayload struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Category         string   `json:"category"`
	DifficultyLevels []string `json:"difficulty_levels,omitempty"`
	SampleQuestions  []string `json:"sample_questions,omitempty"`
}

func (p *PostCreateScenarioPayload) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", interview.ErrValidation)
	}
	if strings.TrimSpace(p.Description) == "" {
		return fmt.Errorf("%w: description is required", interview.ErrValidation)
	}
	if strings.TrimSpace(p.Category) == "" {
		return fmt.Errorf("%w: category is required", interview.ErrValidation)
	}
	return nil
}
