package domain

// EvaluationOutcome tags the result of evaluating a student answer so
// that callers can branch without matching on message text.
type EvaluationOutcome string

const (
	// OutcomeCorrect is the one-time transition to a completed exercise.
	OutcomeCorrect EvaluationOutcome = "correct"
	// OutcomeAlreadyCompleted is returned for correct resubmissions
	// after the exercise has been completed; nothing is mutated.
	OutcomeAlreadyCompleted EvaluationOutcome = "already_completed"
	// OutcomeHint carries a generated hint for an incorrect answer.
	OutcomeHint EvaluationOutcome = "hint"
	// OutcomeFailure means a collaborator failed; progress is untouched
	// and Message holds a fixed user-safe apology.
	OutcomeFailure EvaluationOutcome = "failure"
)

// EvaluationResult is the structured response of one evaluation turn.
type EvaluationResult struct {
	Outcome    EvaluationOutcome
	Message    string
	Similarity float64
	Attempts   int
	Completed  bool
}
