package generator

import (
	"testing"
	"time"

	"mentorloop/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestNewOllamaHintGenerator_Validation(t *testing.T) {
	t.Run("EmptyServerURL", func(t *testing.T) {
		g, err := NewOllamaHintGenerator(config.LLMConfig{Model: "llama3.2"})
		assert.Error(t, err)
		assert.Nil(t, g)
	})

	t.Run("EmptyModel", func(t *testing.T) {
		g, err := NewOllamaHintGenerator(config.LLMConfig{ServerURL: "http://localhost:11434"})
		assert.Error(t, err)
		assert.Nil(t, g)
	})

	t.Run("DefaultTimeout", func(t *testing.T) {
		g, err := NewOllamaHintGenerator(config.LLMConfig{
			ServerURL:   "http://localhost:11434",
			Model:       "llama3.2",
			Temperature: 0.9,
		})
		assert.NoError(t, err)
		assert.Equal(t, 20*time.Second, g.timeout)
	})
}

func TestStripThinkBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no block", "just a hint", "just a hint"},
		{"block at start", "<think>reasoning</think>the hint", "the hint"},
		{"block in middle", "before <think>x</think> after", "before  after"},
		{"unclosed block", "<think>dangling", "<think>dangling"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripThinkBlock(tt.input))
		})
	}
}
