package orchestrator

import (
	"strings"

	"github.com/intervia/go-interview-api/internal/interview/metrics"
)

// ResponseQuality is a lightweight heuristic summary of one user answer,
// returned alongside the submit-response acknowledgement.
type ResponseQuality struct {
	WordCount    int `json:"word_count"`
	QualityScore int `json:"quality_score"`
}

// Spanish indicator words that hint at concrete, experience-backed
// answers.
var positiveIndicators = []string{"experiencia", "aprendí", "logré", "desarrollé", "implementé"}

// AnalyzeResponseQuality scores one answer on a 1-10 scale from its word
// count and the presence of positive indicator words. Purely heuristic;
// no language understanding is attempted.
func AnalyzeResponseQuality(message string) ResponseQuality {
	wordCount := metrics.CountWords(message)
	if wordCount == 0 {
		return ResponseQuality{}
	}

	score := 5
	if wordCount > 20 {
		score++
	}
	if wordCount > 50 {
		score++
	}
	if wordCount < 5 {
		score -= 2
	}

	lowered := strings.ToLower(message)
	for _, word := range positiveIndicators {
		if strings.Contains(lowered, word) {
			score++
			break
		}
	}

	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}
	return ResponseQuality{WordCount: wordCount, QualityScore: score}
}
