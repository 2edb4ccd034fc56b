package types

import (
	"fmt"
	"strings"

	"github.com/go-openapi/strfmt"
	"github.com/intervia/go-interview-api/internal/interview"
)

// PostRegisterPayload is the registration request body.
type PostRegisterPayload struct {
	Email     strfmt.Email `json:"email"`
	Password  string       `json:"password"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
}

func (p *PostRegisterPayload) Validate() error {
	if strings.TrimSpace(string(p.Email)) == "" {
		return fmt.Errorf("%w: email is required", interview.ErrValidation)
	}
	if p.Password == "" {
		return fmt.Errorf("%w: password is required", interview.ErrValidation)
	}
	if strings.TrimSpace(p.FirstName) == "" {
		return fmt.Errorf("%w: first_name is required", interview.ErrValidation)
	}
	if strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("%w: last_name is required", interview.ErrValidation)
	}
	return nil
}

// PostLoginPayload is the login request body.
type PostLoginPayload struct {
	Email    strfmt.Email `json:"email"`
	Password string       `json:"password"`
}

func (p *PostLoginPayload) Validate() error {
	if strings.TrimSpace(string(p.Email)) == "" {
		return fmt.Errorf("%w: email is required", interview.ErrValidation)
	}
	if p.Password == "" {
		return fmt.Errorf("%w: password is required", interview.ErrValidation)
	}
	return nil
}

// PutUpdateUserPayload carries the mutable profile fields. Absent fields
// are left unchanged.
type PutUpdateUserPayload struct {
	FirstName           *string `json:"first_name,omitempty"`
	LastName            *string `json:"last_name,omitempty"`
	PreferredDifficulty *string `json:"preferred_difficulty,omitempty"`
	AnxietyLevel        *int    `json:"anxiety_level,omitempty"`
	Password            *string `json:"password,omitempty"`
}

func (p *PutUpdateUserPayload) Validate() error {
	if p.FirstName != nil && strings.TrimSpace(*p.FirstName) == "" {
		return fmt.Errorf("%w: first_name must not be empty", interview.ErrValidation)
	}
	if p.LastName != nil && strings.TrimSpace(*p.LastName) == "" {
		return fmt.Errorf("%w: last_name must not be empty", interview.ErrValidation)
	}
	return nil
}
