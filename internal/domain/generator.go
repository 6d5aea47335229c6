package domain

import "context"

// HintGenerator produces free-text guidance from a fully rendered
// prompt. It may fail (network or model error); callers decide how to
// degrade.
type HintGenerator interface {
	GenerateHint(ctx context.Context, prompt string) (string, error)
}
