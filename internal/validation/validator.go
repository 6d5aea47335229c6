package validation

import (
	"regexp"
	"strings"

	"mentorloop/internal/domain"
)

const (
	maxAnswerLength   = 2000
	maxTitleLength    = 200
	maxQuestionLength = 4000
)

var ulidPattern = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

func isValidULID(id string) bool {
	return ulidPattern.MatchString(id)
}

// ValidateID checks that an identifier path parameter is a ULID.
func (v *Validator) ValidateID(field, id string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError(field))
	} else if !isValidULID(id) {
		errors = append(errors, domain.NewInvalidFormatError(field, id))
	}
	return errors
}

// ValidateSubmitAnswerRequest validates one answer submission.
func (v *Validator) ValidateSubmitAnswerRequest(sessionID, answer string) domain.ValidationErrors {
	errors := v.ValidateID("session_id", sessionID)

	if strings.TrimSpace(answer) == "" {
		errors = append(errors, domain.NewMissingFieldError("answer"))
	} else if len(answer) > maxAnswerLength {
		errors = append(errors, domain.NewOutOfRangeError("answer", len(answer), 1, maxAnswerLength))
	}
	return errors
}

// ValidateStartSessionRequest validates a session start request.
func (v *Validator) ValidateStartSessionRequest(exerciseID string) domain.ValidationErrors {
	return v.ValidateID("exercise_id", exerciseID)
}

// ValidateExerciseRequest validates exercise create/update payloads.
func (v *Validator) ValidateExerciseRequest(title, question, correctAnswer string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(title) == "" {
		errors = append(errors, domain.NewMissingFieldError("title"))
	} else if len(title) > maxTitleLength {
		errors = append(errors, domain.NewOutOfRangeError("title", len(title), 1, maxTitleLength))
	}

	if strings.TrimSpace(question) == "" {
		errors = append(errors, domain.NewMissingFieldError("question"))
	} else if len(question) > maxQuestionLength {
		errors = append(errors, domain.NewOutOfRangeError("question", len(question), 1, maxQuestionLength))
	}

	if strings.TrimSpace(correctAnswer) == "" {
		errors = append(errors, domain.NewMissingFieldError("correct_answer"))
	} else if len(correctAnswer) > maxAnswerLength {
		errors = append(errors, domain.NewOutOfRangeError("correct_answer", len(correctAnswer), 1, maxAnswerLength))
	}
	return errors
}
