package ai

import (
	"context"
)

// Generator defines the contract for the text-generation capability.
// This interface allows for swapping different AI providers (Gemini, local models, etc.)
// and for stubbing generation in tests.
type Generator interface {
	// Generate produces free text for the given prompt. It is a single
	// long-latency call; callers pass a bounded context.
	Generate(ctx context.Context, prompt string, maxTokens int32, temperature float32) (string, error)

	// Ready reports whether the capability is usable. Callers must check it
	// before attempting generation.
	Ready() bool
}
