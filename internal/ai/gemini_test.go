package ai

import (
	"context"
	"testing"
)

func TestNewGeminiGenerator_MissingKeyIsNotReady(t *testing.T) {
	g := NewGeminiGenerator(context.Background(), "")

	if g.Ready() {
		t.Errorf("generator with no API key must not report ready")
	}
	if _, err := g.Generate(context.Background(), "hello", 100, 0.7); err == nil {
		t.Errorf("Generate on a not-ready generator must fail")
	}
	// Close on a not-ready generator is a no-op, not a panic.
	g.Close()
}
