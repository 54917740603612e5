package completion

import (
	"context"
	"fmt"
)

// NoOp is a completer that returns a fixed placeholder article. Useful for
// development and tests when no provider key is available.
type NoOp struct{}

// NewNoOp creates a new NoOp completer.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Complete returns a short placeholder article with a title line followed
// by a body, mirroring the shape real providers produce.
func (NoOp) Complete(_ context.Context, language, _ string) (string, error) {
	return fmt.Sprintf("Placeholder Article\n\nGenerated without a completion provider (language: %s).", language), nil
}
