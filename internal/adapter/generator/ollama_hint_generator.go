package generator

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mentorloop/internal/config"
	"mentorloop/internal/domain"
	"mentorloop/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// OllamaHintGenerator implements domain.HintGenerator against an
// Ollama chat model.
type OllamaHintGenerator struct {
	llm         *ollama.LLM
	temperature float64
	timeout     time.Duration
}

// NewOllamaHintGenerator creates a new OllamaHintGenerator from the LLM config.
func NewOllamaHintGenerator(cfg config.LLMConfig) (*OllamaHintGenerator, error) {
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("ollama server URL cannot be empty")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     10 * time.Second,
		},
	}

	llm, err := ollama.New(
		ollama.WithServerURL(cfg.ServerURL),
		ollama.WithModel(cfg.Model),
		ollama.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return &OllamaHintGenerator{
		llm:         llm,
		temperature: cfg.Temperature,
		timeout:     timeout,
	}, nil
}

var _ domain.HintGenerator = (*OllamaHintGenerator)(nil)

// GenerateHint sends the rendered prompt to the model and returns the
// trimmed completion. Reasoning-model <think> blocks are stripped
// before the text is returned.
func (g *OllamaHintGenerator) GenerateHint(ctx context.Context, prompt string) (string, error) {
	l := logger.Get()

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	response, err := g.llm.Call(callCtx, prompt, llms.WithTemperature(g.temperature))
	if err != nil {
		if err == context.DeadlineExceeded {
			l.Error("LLM request timed out", zap.Error(err))
			return "", fmt.Errorf("LLM request timed out: %w", err)
		}
		l.Error("Failed to get response from LLM", zap.Error(err))
		return "", fmt.Errorf("LLM call failed: %w", err)
	}

	hint := stripThinkBlock(strings.TrimSpace(response))
	if hint == "" {
		return "", fmt.Errorf("LLM returned an empty completion")
	}
	return hint, nil
}

// stripThinkBlock removes a <think>...</think> block when present.
func stripThinkBlock(s string) string {
	thinkStart := strings.Index(s, "<think>")
	if thinkStart == -1 {
		return s
	}
	thinkEnd := strings.Index(s, "</think>")
	if thinkEnd == -1 || thinkEnd < thinkStart {
		return s
	}
	return strings.TrimSpace(s[:thinkStart] + s[thinkEnd+len("</think>"):])
}
