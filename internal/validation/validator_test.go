package validation

import (
	"strings"
	"testing"

	"mentorloop/internal/domain"

	"github.com/stretchr/testify/assert"
)

const validID = "01HGW2N8M5NVKWJRZPXEBDEC5V"

func TestValidateID(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateID("exercise_id", validID))

	errs := v.ValidateID("exercise_id", "")
	assert.Len(t, errs, 1)
	assert.Equal(t, domain.CodeMissingField, errs[0].Code)

	errs = v.ValidateID("exercise_id", "not-a-ulid")
	assert.Len(t, errs, 1)
	assert.Equal(t, domain.CodeInvalidFormat, errs[0].Code)
}

func TestValidateSubmitAnswerRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateSubmitAnswerRequest(validID, "my answer"))

	errs := v.ValidateSubmitAnswerRequest(validID, "   ")
	assert.Len(t, errs, 1)
	assert.Equal(t, "answer", errs[0].Field)

	errs = v.ValidateSubmitAnswerRequest(validID, strings.Repeat("a", 2001))
	assert.Len(t, errs, 1)
	assert.Equal(t, domain.CodeOutOfRange, errs[0].Code)

	errs = v.ValidateSubmitAnswerRequest("bad", "")
	assert.Len(t, errs, 2)
}

func TestValidateExerciseRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateExerciseRequest("Title", "Question?", "Answer"))

	errs := v.ValidateExerciseRequest("", "", "")
	assert.Len(t, errs, 3)

	errs = v.ValidateExerciseRequest(strings.Repeat("t", 201), "Question?", "Answer")
	assert.Len(t, errs, 1)
	assert.Equal(t, "title", errs[0].Field)
}
