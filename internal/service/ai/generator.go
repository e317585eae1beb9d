package ai

import (
	"context"
	"errors"
)

// ErrGeneration marks a failed call to the hosted model (network, quota,
// malformed response). Callers surface it as an opaque server error.
var ErrGeneration = errors.New("text generation failed")

// Generator turns a fully substituted prompt into one response string.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
