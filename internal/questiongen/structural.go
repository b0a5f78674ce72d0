package questiongen

import (
	"fmt"
	"strings"

	"github.com/Rupesh023/Question-gen/internal/question"
)

// StructuralValidator checks invariants the JSON shape alone cannot
// guarantee: distinct options, a resolvable correct label, and stems that
// are not a verbatim copy of the seed.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *question.GeneratedQuestion, base question.BaseQuestion) *ValidationError {
	if q.CorrectIndex() < 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("correct label %q is not one of A-E", q.CorrectLabel),
		}
	}

	seen := make(map[string]string, len(q.Options))
	for i, opt := range q.Options {
		key := strings.ToLower(strings.TrimSpace(opt))
		if prev, dup := seen[key]; dup {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("options %s and %s are identical (%q)", prev, question.Labels[i], opt),
			}
		}
		seen[key] = question.Labels[i]
	}

	if strings.TrimSpace(q.Stem) == strings.TrimSpace(base.SeedText) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "generated stem is a verbatim copy of the base question",
		}
	}

	if len(q.Stem) > 2000 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question text exceeds 2000 characters",
		}
	}
	if len(q.Explanation) > 4000 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation exceeds 4000 characters",
		}
	}

	return nil
}
