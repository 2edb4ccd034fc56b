package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeResponseQualityEmptyMessage(t *testing.T) {
	q := AnalyzeResponseQuality("   ")
	assert.Equal(t, 0, q.WordCount)
	assert.Equal(t, 0, q.QualityScore)
}

func TestAnalyzeResponseQualityShortAnswerPenalized(t *testing.T) {
	q := AnalyzeResponseQuality("no sé")
	assert.Equal(t, 2, q.WordCount)
	assert.Equal(t, 3, q.QualityScore)
}

func TestAnalyzeResponseQualityMediumAnswer(t *testing.T) {
	q := AnalyzeResponseQuality("Trabajé en varios proyectos durante mis años como analista de datos")
	assert.Equal(t, 11, q.WordCount)
	assert.Equal(t, 5, q.QualityScore)
}

func TestAnalyzeResponseQualityIndicatorWordBonus(t *testing.T) {
	q := AnalyzeResponseQuality("Mi experiencia incluye liderar equipos y proyectos de migración complejos")
	assert.Equal(t, 6, q.QualityScore)
}

func TestAnalyzeResponseQualityLongDetailedAnswer(t *testing.T) {
	long := "Durante mi última etapa profesional desarrollé una plataforma de análisis que " +
		"procesaba millones de eventos al día, aprendí a coordinar despliegues entre varios " +
		"equipos, implementé pruebas automatizadas de extremo a extremo, y logré reducir los " +
		"tiempos de respuesta del sistema principal a menos de la mitad, algo de lo que me " +
		"siento especialmente orgulloso porque exigió negociar prioridades con producto y " +
		"con operaciones durante varios meses seguidos de trabajo constante y muy detallado"
	q := AnalyzeResponseQuality(long)
	assert.Greater(t, q.WordCount, 50)
	assert.Equal(t, 8, q.QualityScore)
}
