package orchestrator

import "strings"

// Fallback question catalogs, keyed by a keyword matched against the
// scenario name. Used whenever the question provider fails; selection is
// deterministic and never errors.
var fallbackCatalogs = []struct {
	keyword   string
	questions []string
}{
	{
		keyword: "programador",
		questions: []string{
			"¿Podrías contarme sobre tu experiencia en programación?",
			"¿Qué lenguajes de programación dominas mejor?",
			"¿Cómo enfrentas los desafíos técnicos en tus proyectos?",
			"¿Puedes describir un proyecto del que te sientas orgulloso?",
		},
	},
	{
		keyword: "atención al cliente",
		questions: []string{
			"¿Qué te motiva a trabajar en atención al cliente?",
			"¿Cómo manejarías a un cliente molesto o insatisfecho?",
			"¿Qué consideras más importante en el servicio al cliente?",
			"Cuéntame sobre una situación difícil que hayas resuelto",
		},
	},
	{
		keyword: "marketing",
		questions: []string{
			"¿Cuál es tu experiencia en marketing digital?",
			"¿Cómo medirías el éxito de una campaña publicitaria?",
			"¿Qué redes sociales consideras más efectivas y por qué?",
			"¿Cómo te mantienes actualizado con las tendencias del marketing?",
		},
	},
}

var genericFallbackQuestions = []string{
	"¿Podrías presentarte y contarme sobre tu experiencia?",
	"¿Qué te interesa de esta posición?",
	"¿Cuáles consideras que son tus principales fortalezas?",
	"¿Cómo te ves en 5 años?",
}

// FallbackQuestion picks the next catalog question for the scenario. The
// index advances one question per full user/interviewer exchange pair
// (ledger length / 2) and clamps to the last catalog entry.
func FallbackQuestion(scenarioName string, ledgerLen int) string {
	questions := genericFallbackQuestions
	name := strings.ToLower(scenarioName)
	for _, catalog := range fallbackCatalogs {
		if strings.Contains(name, catalog.keyword) {
			questions = catalog.questions
			break
		}
	}

	index := ledgerLen / 2
	if index >= len(questions) {
		index = len(questions) - 1
	}
	return questions[index]
}
