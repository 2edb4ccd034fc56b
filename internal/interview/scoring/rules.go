package scoring

// Rules is the data-driven score adjustment table. The defaults reproduce
// the reference heuristics; deployments may tune them without touching the
// scoring code.
type Rules struct {
	Baseline float64
	MinScore float64
	MaxScore float64

	// Response-time rules (seconds).
	SlowResponseSeconds           float64
	SlowResponsePenaltyConfidence float64
	SlowResponsePenaltyOverall    float64
	FastResponseSeconds           float64
	FastResponsePenaltyConfidence float64

	// Words-per-response rules.
	BriefAvgWords               float64
	BriefPenaltyCommunication   float64
	BriefPenaltyOverall         float64
	VerboseAvgWords             float64
	VerbosePenaltyCommunication float64

	// Session-duration rules (minutes).
	ShortSessionMinutes        float64
	ShortSessionPenaltyOverall float64
	LongSessionMinutes         float64
	LongSessionBonusOverall    float64
}

// DefaultRules returns the reference rule table.
func DefaultRules() Rules {
	return Rules{
		Baseline: 7.0,
		MinScore: 1.0,
		MaxScore: 10.0,

		SlowResponseSeconds:           10,
		SlowResponsePenaltyConfidence: -2,
		SlowResponsePenaltyOverall:    -1,
		FastResponseSeconds:           2,
		FastResponsePenaltyConfidence: -0.5,

		BriefAvgWords:               10,
		BriefPenaltyCommunication:   -1.5,
		BriefPenaltyOverall:         -1,
		VerboseAvgWords:             100,
		VerbosePenaltyCommunication: -0.5,

		ShortSessionMinutes:        5,
		ShortSessionPenaltyOverall: -2,
		LongSessionMinutes:         30,
		LongSessionBonusOverall:    0.5,
	}
}

// Catalog holds the feedback templates and their trigger thresholds. The
// texts are the reference Spanish-language set; they are fixed templates,
// parameterized by nothing.
type Catalog struct {
	ExcellentOverallScore float64
	NaturalPacingSeconds  float64
	EngagedMinutes        float64
	ImprovementScore      float64
	ElaborateAvgWords     float64
	FluencySeconds        float64

	StrengthExcellence    string
	StrengthNaturalPacing string
	StrengthEngagement    string

	ImprovementClarity    string
	ImprovementConfidence string
	ImprovementTechnical  string

	SuggestionElaborate string
	SuggestionFluency   string
	SuggestionClosing   string
}

// DefaultCatalog returns the reference feedback catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		ExcellentOverallScore: 8,
		NaturalPacingSeconds:  5,
		EngagedMinutes:        15,
		ImprovementScore:      7,
		ElaborateAvgWords:     15,
		FluencySeconds:        8,

		StrengthExcellence:    "Excelente desempeño general en la entrevista",
		StrengthNaturalPacing: "Tiempo de respuesta apropiado y natural",
		StrengthEngagement:    "Buena participación durante toda la sesión",

		ImprovementClarity:    "Mejorar la claridad y estructura de las respuestas",
		ImprovementConfidence: "Trabajar en la confianza y seguridad al responder",
		ImprovementTechnical:  "Fortalecer conocimientos técnicos específicos del área",

		SuggestionElaborate: "Elaborar más las respuestas con ejemplos específicos",
		SuggestionFluency:   "Practicar respuestas a preguntas comunes para mejorar fluidez",
		SuggestionClosing:   "Continuar practicando con diferentes tipos de entrevistas",
	}
}
