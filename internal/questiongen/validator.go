package questiongen

import (
	"fmt"

	"github.com/Rupesh023/Question-gen/internal/question"
)

// Validator checks a generated question for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, e.g. "structural".
	Name() string

	// Validate checks the question and returns nil if it passes. The base
	// question provides context (which difficulty was requested, etc.).
	Validate(q *question.GeneratedQuestion, base question.BaseQuestion) *ValidationError
}

// ValidationError describes why a generated question was rejected.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
