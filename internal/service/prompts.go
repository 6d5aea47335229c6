package service

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/prompts"
)

// Fixed user-facing fallback messages. Returned verbatim so callers and
// tests can rely on the exact wording.
const (
	MsgProcessingFailure = "I encountered an issue processing your answer. Please try again."
	MsgFeedbackFailure   = "I encountered an issue generating feedback. Please try again or rephrase your answer."
)

// HintTier identifies which escalation stage of guidance a prompt
// belongs to. It is derived from the attempt count at evaluation time.
type HintTier int

const (
	TierFirstAttempt HintTier = iota
	TierMakingProgress
	TierStructuredBreakdown
)

// TierForAttempts maps the attempt count before increment to the
// guidance tier: gentle on the first attempt, more specific on the
// next two, a structured breakdown from the fourth attempt on.
func TierForAttempts(attempts int) HintTier {
	switch {
	case attempts == 0:
		return TierFirstAttempt
	case attempts < 3:
		return TierMakingProgress
	default:
		return TierStructuredBreakdown
	}
}

var firstAttemptPrompt = prompts.NewPromptTemplate(
	`You are an encouraging educational AI assistant. The user is just starting to work on this problem.

Context: {{.context}}

Question: {{.question}}
User's First Attempt: {{.userAnswer}}

Provide gentle guidance and a starting point for thinking about the problem.
Focus on understanding the question and identifying key concepts.`,
	[]string{"context", "question", "userAnswer"},
)

var makingProgressPrompt = prompts.NewPromptTemplate(
	`You are an educational AI assistant helping a student who is making progress.

Context: {{.context}}
Previous Attempts: {{.attempts}}
Previous Hints: {{.previousHints}}

Question: {{.question}}
Latest Answer: {{.userAnswer}}

Provide more specific hints based on their answer. Point out what they've understood correctly
and gently guide them toward areas they might have missed.`,
	[]string{"context", "attempts", "previousHints", "question", "userAnswer"},
)

var structuredBreakdownPrompt = prompts.NewPromptTemplate(
	`You are an educational AI assistant helping a student who might be struggling.

Context: {{.context}}
Attempts Made: {{.attempts}}
Previous Hints: {{.previousHints}}

Question: {{.question}}
Latest Answer: {{.userAnswer}}

Break down the problem into smaller steps. Provide more structured guidance
while still encouraging independent thinking. Consider suggesting different
approaches or ways of thinking about the problem.`,
	[]string{"context", "attempts", "previousHints", "question", "userAnswer"},
)

func promptForTier(tier HintTier) prompts.PromptTemplate {
	switch tier {
	case TierFirstAttempt:
		return firstAttemptPrompt
	case TierMakingProgress:
		return makingProgressPrompt
	default:
		return structuredBreakdownPrompt
	}
}

// renderHintPrompt fills the tier-appropriate template with the
// retrieved context and the student's current state.
func renderHintPrompt(tier HintTier, contextBlock, question, userAnswer string, attempts int, previousHints []string) (string, error) {
	return promptForTier(tier).Format(map[string]any{
		"context":       contextBlock,
		"question":      question,
		"userAnswer":    userAnswer,
		"attempts":      attempts,
		"previousHints": strings.Join(previousHints, ", "),
	})
}

var encouragements = map[int]string{
	0: "Let's start exploring this together!",
	1: "You're making progress! Keep thinking about it.",
	2: "You're getting closer! Consider these points:",
	3: "Don't give up! Here's a different way to think about it:",
	4: "You're putting in great effort! Let's break this down further:",
}

// encouragementFor returns the per-attempt encouragement line that
// prefixes a hint. Attempt counts past the table fall back to a
// generic perseverance line.
func encouragementFor(attempts int) string {
	if msg, ok := encouragements[attempts]; ok {
		return msg
	}
	return "Keep persevering! Here's some guidance:"
}

// congratulationFor builds the one-time completion message. attempts is
// the count before this correct submission, so the human-facing number
// is attempts+1.
func congratulationFor(attempts int) string {
	feedback := "Excellent work! You found the solution on your first try!"
	if attempts > 0 {
		feedback = fmt.Sprintf("Well done! You persevered and found the correct answer after %d attempts.", attempts+1)
	}
	return fmt.Sprintf("🎉 Congratulations! %s Your understanding has grown through this process.", feedback)
}

// alreadyCompletedMessage acknowledges a correct resubmission after the
// exercise is done without repeating the congratulation.
func alreadyCompletedMessage() string {
	return "You've already completed this exercise. Feel free to move on or review the material."
}
