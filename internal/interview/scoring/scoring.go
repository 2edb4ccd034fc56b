package scoring

import "github.com/intervia/go-interview-api/internal/interview/metrics"

// Scores are the four bounded feedback dimensions, each within
// [Rules.MinScore, Rules.MaxScore].
type Scores struct {
	Overall       float64 `json:"overall_score"`
	Communication float64 `json:"communication_score"`
	Confidence    float64 `json:"confidence_score"`
	Technical     float64 `json:"technical_score"`
}

// Score maps a metrics snapshot onto the four dimensions. Every dimension
// starts at the baseline and is adjusted by independent additive rules,
// then clamped. Pure function of the snapshot and the rule table.
func (r Rules) Score(m metrics.Snapshot) Scores {
	s := Scores{
		Overall:       r.Baseline,
		Communication: r.Baseline,
		Confidence:    r.Baseline,
		Technical:     r.Baseline,
	}

	if m.AvgResponseTime > r.SlowResponseSeconds {
		s.Confidence += r.SlowResponsePenaltyConfidence
		s.Overall += r.SlowResponsePenaltyOverall
	} else if m.AvgResponseTime < r.FastResponseSeconds {
		s.Confidence += r.FastResponsePenaltyConfidence
	}

	avgWords := m.AvgWordsPerResponse()
	if avgWords < r.BriefAvgWords {
		s.Communication += r.BriefPenaltyCommunication
		s.Overall += r.BriefPenaltyOverall
	} else if avgWords >= r.VerboseAvgWords {
		s.Communication += r.VerbosePenaltyCommunication
	}

	if m.SessionDuration < r.ShortSessionMinutes {
		s.Overall += r.ShortSessionPenaltyOverall
	} else if m.SessionDuration > r.LongSessionMinutes {
		s.Overall += r.LongSessionBonusOverall
	}

	s.Overall = r.clamp(s.Overall)
	s.Communication = r.clamp(s.Communication)
	s.Confidence = r.clamp(s.Confidence)
	s.Technical = r.clamp(s.Technical)
	return s
}

func (r Rules) clamp(v float64) float64 {
	if v < r.MinScore {
		return r.MinScore
	}
	if v > r.MaxScore {
		return r.MaxScore
	}
	return v
}

// Feedback is the qualitative commentary derived from scores and metrics.
// List order is generation order and is preserved.
type Feedback struct {
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areas_for_improvement"`
	SpecificSuggestions []string `json:"specific_suggestions"`
}

// Generate produces the commentary lists from deterministic threshold
// rules over the scores and the metrics snapshot. The generic closing
// suggestion is always appended.
func (c Catalog) Generate(s Scores, m metrics.Snapshot) Feedback {
	fb := Feedback{
		Strengths:           []string{},
		AreasForImprovement: []string{},
		SpecificSuggestions: []string{},
	}

	if s.Overall >= c.ExcellentOverallScore {
		fb.Strengths = append(fb.Strengths, c.StrengthExcellence)
	}
	if m.AvgResponseTime < c.NaturalPacingSeconds {
		fb.Strengths = append(fb.Strengths, c.StrengthNaturalPacing)
	}
	if m.SessionDuration > c.EngagedMinutes {
		fb.Strengths = append(fb.Strengths, c.StrengthEngagement)
	}

	if s.Communication < c.ImprovementScore {
		fb.AreasForImprovement = append(fb.AreasForImprovement, c.ImprovementClarity)
	}
	if s.Confidence < c.ImprovementScore {
		fb.AreasForImprovement = append(fb.AreasForImprovement, c.ImprovementConfidence)
	}
	if s.Technical < c.ImprovementScore {
		fb.AreasForImprovement = append(fb.AreasForImprovement, c.ImprovementTechnical)
	}

	if m.AvgWordsPerResponse() < c.ElaborateAvgWords {
		fb.SpecificSuggestions = append(fb.SpecificSuggestions, c.SuggestionElaborate)
	}
	if m.AvgResponseTime > c.FluencySeconds {
		fb.SpecificSuggestions = append(fb.SpecificSuggestions, c.SuggestionFluency)
	}
	fb.SpecificSuggestions = append(fb.SpecificSuggestions, c.SuggestionClosing)

	return fb
}
