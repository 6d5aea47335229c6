package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForAttempts(t *testing.T) {
	assert.Equal(t, TierFirstAttempt, TierForAttempts(0))
	assert.Equal(t, TierMakingProgress, TierForAttempts(1))
	assert.Equal(t, TierMakingProgress, TierForAttempts(2))
	assert.Equal(t, TierStructuredBreakdown, TierForAttempts(3))
	assert.Equal(t, TierStructuredBreakdown, TierForAttempts(10))
}

func TestRenderHintPrompt_FillsAllFields(t *testing.T) {
	prompt, err := renderHintPrompt(TierMakingProgress,
		"some retrieved context",
		"What is a goroutine?",
		"a kind of process",
		2,
		[]string{"first hint", "second hint"},
	)

	assert.NoError(t, err)
	assert.Contains(t, prompt, "some retrieved context")
	assert.Contains(t, prompt, "What is a goroutine?")
	assert.Contains(t, prompt, "a kind of process")
	assert.Contains(t, prompt, "2")
	assert.Contains(t, prompt, "first hint, second hint")
}

func TestCongratulationFor(t *testing.T) {
	first := congratulationFor(0)
	assert.Contains(t, first, "first try")
	assert.Contains(t, first, "Congratulations")

	later := congratulationFor(2)
	assert.Contains(t, later, "after 3 attempts")
}

func TestEncouragementFor_FallsBack(t *testing.T) {
	assert.Equal(t, "Let's start exploring this together!", encouragementFor(0))
	assert.Equal(t, "Keep persevering! Here's some guidance:", encouragementFor(5))
	assert.Equal(t, "Keep persevering! Here's some guidance:", encouragementFor(42))
}
