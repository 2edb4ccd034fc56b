package provider

import (
	"fmt"
	"strings"

	"github.com/intervia/go-interview-api/internal/interview/ledger"
)

// historyWindow bounds how many recent turns are included in the prompt.
const historyWindow = 6

var avatarPersonality = map[string]string{
	"profesional": "Eres un entrevistador profesional, formal pero amigable.",
	"amigable":    "Eres un entrevistador muy amigable y relajado que busca hacer sentir cómodo al candidato.",
	"serio":       "Eres un entrevistador serio y directo, que va al grano en sus preguntas.",
}

func systemPrompt(ic Context) string {
	avatar := ic.InterviewerAvatar
	personality, ok := avatarPersonality[avatar]
	if !ok {
		avatar = "profesional"
		personality = avatarPersonality[avatar]
	}

	scenarioName := ic.ScenarioName
	if scenarioName == "" {
		scenarioName = "Trabajo general"
	}
	difficulty := ic.DifficultyLevel
	if difficulty == "" {
		difficulty = "básico"
	}

	var b strings.Builder
	b.WriteString(personality)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Estás conduciendo una entrevista para el puesto de: %s\n", scenarioName)
	fmt.Fprintf(&b, "Descripción del escenario: %s\n", ic.ScenarioDescription)
	fmt.Fprintf(&b, "Nivel de dificultad: %s\n", difficulty)
	b.WriteString("\nInstrucciones:\n")
	b.WriteString("- Haz preguntas relevantes al puesto y nivel de dificultad\n")
	fmt.Fprintf(&b, "- Mantén un tono %s\n", avatar)
	b.WriteString("- Las preguntas deben ser en español\n")
	b.WriteString("- Sé conciso en tus preguntas (máximo 2-3 oraciones)\n")
	b.WriteString("- Adapta las preguntas según las respuestas previas del candidato\n")
	return b.String()
}

func conversationPrompt(ic Context) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Escenario de entrevista: %s\n", ic.ScenarioName)

	if ic.CustomDescription != "" {
		fmt.Fprintf(&b, "Descripción personalizada: %s\n", ic.CustomDescription)
	}

	history := ic.History
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	if len(history) > 0 {
		b.WriteString("\nConversación previa:\n")
		for _, turn := range history {
			speaker := "Candidato"
			if turn.Speaker == ledger.SpeakerInterviewer {
				speaker = "Entrevistador"
			}
			fmt.Fprintf(&b, "%s: %s\n", speaker, turn.Message)
		}
		b.WriteString("\nGenera la siguiente pregunta apropiada para continuar la entrevista.")
	} else {
		b.WriteString("\nEsta es la primera pregunta de la entrevista. Comienza con una pregunta de presentación apropiada.")
	}
	return b.String()
}

// BuildPrompt assembles the full prompt sent to the model.
func BuildPrompt(ic Context) string {
	return systemPrompt(ic) + "\n\n" + conversationPrompt(ic)
}
