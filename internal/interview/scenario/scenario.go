package scenario

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/intervia/go-interview-api/internal/interview"
)

// Default option vocabularies used when a scenario declares none.
var (
	DefaultDifficultyLevels   = []string{"básico", "intermedio", "avanzado"}
	DefaultInterviewerAvatars = []string{"profesional", "amigable", "serio"}
	DefaultEnvironments       = []string{"oficina", "sala_reuniones", "espacio_moderno"}
)

// Scenario describes one interview setting a user can practice against.
// Option lists are first-class fields; they are serialized only at the
// storage boundary.
type Scenario struct {
	ID          string
	Name        string
	Description string
	Category    string

	DifficultyLevels   []string
	SampleQuestions    []string
	InterviewerAvatars []string
	Environments       []string

	IsActive  bool
	CreatedAt time.Time
}

// New creates a scenario, filling empty option lists with the defaults.
func New(name, description, category string, difficultyLevels, sampleQuestions []string, now time.Time) (*Scenario, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", interview.ErrValidation)
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: description is required", interview.ErrValidation)
	}
	if strings.TrimSpace(category) == "" {
		return nil, fmt.Errorf("%w: category is required", interview.ErrValidation)
	}

	if len(difficultyLevels) == 0 {
		difficultyLevels = append([]string(nil), DefaultDifficultyLevels...)
	}
	if sampleQuestions == nil {
		sampleQuestions = []string{}
	}

	return &Scenario{
		ID:                 uuid.NewString(),
		Name:               name,
		Description:        description,
		Category:           category,
		DifficultyLevels:   difficultyLevels,
		SampleQuestions:    sampleQuestions,
		InterviewerAvatars: append([]string(nil), DefaultInterviewerAvatars...),
		Environments:       append([]string(nil), DefaultEnvironments...),
		IsActive:           true,
		CreatedAt:          now,
	}, nil
}

// Seed returns the default scenario set installed on an empty database.
func Seed(now time.Time) []*Scenario {
	seeds := []struct {
		name        string
		description string
		category    string
		questions   []string
	}{
		{
			name:        "Programador Junior",
			description: "Entrevista técnica para posición de desarrollo de software",
			category:    "Tecnología",
			questions: []string{
				"¿Cuéntame sobre tu experiencia en programación?",
				"¿Qué lenguajes de programación dominas?",
				"¿Cómo resuelves un problema técnico complejo?",
			},
		},
		{
			name:        "Atención al Cliente",
			description: "Entrevista para posiciones de servicio y atención al cliente",
			category:    "Servicios",
			questions: []string{
				"¿Cómo manejarías a un cliente molesto?",
				"¿Qué significa para ti un buen servicio al cliente?",
				"Describe una situación difícil que hayas resuelto",
			},
		},
		{
			name:        "Marketing Digital",
			description: "Entrevista para especialistas en marketing y publicidad",
			category:    "Marketing",
			questions: []string{
				"¿Cómo medirías el éxito de una campaña digital?",
				"¿Qué redes sociales consideras más efectivas?",
				"Describe tu experiencia con análisis de datos",
			},
		},
	}

	out := make([]*Scenario, 0, len(seeds))
	for _, s := range seeds {
		sc, err := New(s.name, s.description, s.category, nil, s.questions, now)
		if err != nil {
			// Seed data is static and always valid.
			panic(err)
		}
		out = append(out, sc)
	}
	return out
}
