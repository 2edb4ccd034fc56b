package types_test

import (
	"testing"

	"github.com/intervia/go-interview-api/internal/interview"
	"github.com/intervia/go-interview-api/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPostCreateSessionPayloadValidate(t *testing.T) {
	p := &types.PostCreateSessionPayload{
		UserID:          "user-1",
		ScenarioID:      "scenario-1",
		DifficultyLevel: "básico",
	}
	assert.NoError(t, p.Validate())

	assert.ErrorIs(t, (&types.PostCreateSessionPayload{ScenarioID: "s", DifficultyLevel: "básico"}).Validate(), interview.ErrValidation)
	assert.ErrorIs(t, (&types.PostCreateSessionPayload{UserID: "u", DifficultyLevel: "básico"}).Validate(), interview.ErrValidation)
	assert.ErrorIs(t, (&types.PostCreateSessionPayload{UserID: "u", ScenarioID: "s"}).Validate(), interview.ErrValidation)
}

func TestPostResponsePayloadValidate(t *testing.T) {
	rt := 2.5
	p := &types.PostResponsePayload{SessionID: "sess-1", Message: "hola", ResponseTime: &rt}
	assert.NoError(t, p.Validate())

	assert.ErrorIs(t, (&types.PostResponsePayload{Message: "hola"}).Validate(), interview.ErrValidation)
	assert.ErrorIs(t, (&types.PostResponsePayload{SessionID: "s", Message: "   "}).Validate(), interview.ErrValidation)

	negative := -1.0
	p = &types.PostResponsePayload{SessionID: "s", Message: "hola", ResponseTime: &negative}
	assert.ErrorIs(t, p.Validate(), interview.ErrValidation)
}

func TestPutSessionMetricsPayloadValidate(t *testing.T) {
	words := 40
	p := &types.PutSessionMetricsPayload{TotalWords: &words}
	assert.NoError(t, p.Validate())

	negativeWords := -1
	p = &types.PutSessionMetricsPayload{TotalWords: &negativeWords}
	assert.ErrorIs(t, p.Validate(), interview.ErrValidation)
}

func TestPostRegisterPayloadValidate(t *testing.T) {
	p := &types.PostRegisterPayload{
		Email:     "ana@example.com",
		Password:  "secret123",
		FirstName: "Ana",
		LastName:  "García",
	}
	assert.NoError(t, p.Validate())

	p.Password = ""
	assert.ErrorIs(t, p.Validate(), interview.ErrValidation)
}
