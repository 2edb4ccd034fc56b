package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackQuestionEmptyLedgerReturnsFirst(t *testing.T) {
	q := FallbackQuestion("Programador Junior", 0)
	assert.Equal(t, "¿Podrías contarme sobre tu experiencia en programación?", q)
}

func TestFallbackQuestionAdvancesPerExchangePair(t *testing.T) {
	assert.Equal(t, fallbackCatalogs[0].questions[0], FallbackQuestion("Programador Junior", 1))
	assert.Equal(t, fallbackCatalogs[0].questions[1], FallbackQuestion("Programador Junior", 2))
	assert.Equal(t, fallbackCatalogs[0].questions[2], FallbackQuestion("Programador Junior", 4))
	assert.Equal(t, fallbackCatalogs[0].questions[3], FallbackQuestion("Programador Junior", 6))
}

func TestFallbackQuestionClampsToLastEntry(t *testing.T) {
	q := FallbackQuestion("Programador Junior", 100)
	assert.Equal(t, fallbackCatalogs[0].questions[3], q)
}

func TestFallbackQuestionMatchesKeywordCaseInsensitive(t *testing.T) {
	assert.Equal(t, fallbackCatalogs[1].questions[0], FallbackQuestion("Atención al Cliente", 0))
	assert.Equal(t, fallbackCatalogs[2].questions[0], FallbackQuestion("Marketing Digital", 0))
}

func TestFallbackQuestionUnknownScenarioUsesGenericCatalog(t *testing.T) {
	assert.Equal(t, genericFallbackQuestions[0], FallbackQuestion("Chef Ejecutivo", 0))
	assert.Equal(t, genericFallbackQuestions[3], FallbackQuestion("Chef Ejecutivo", 50))
}
