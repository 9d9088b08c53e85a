// File: services/intelligence/interface.go
package intelligence

import (
	"context"
	"errors"
)

// ContentGenerator produces raw model output for a prompt. Satisfied by
// GeminiClient; test doubles implement it to exercise the parse boundary
// without a live model.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Interpreter failure modes. The model call failing or timing out is
// "unavailable"; the model answering with content that carries no JSON
// object is "unparsable". Missing or malformed day structure inside the
// JSON is neither, it is normalized away.
var (
	ErrUnavailable = errors.New("availability interpreter unavailable")
	ErrUnparsable  = errors.New("availability interpreter returned unparsable content")
)
