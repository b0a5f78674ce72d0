package questiongen

import (
	"fmt"
	"strings"

	"github.com/Rupesh023/Question-gen/internal/question"
)

const systemPrompt = `You are a math educator creating assessment questions for middle school students.

Rules:
- Given a base question, create a completely NEW scenario: different context, different objects, different numbers.
- Preserve the mathematical concept and the stated difficulty level of the base question.
- Use plain ASCII text for all math. No LaTeX, no Unicode symbols. Use / for fractions and * for multiplication.
- Provide exactly 5 answer options. Exactly one must be correct; the other four should reflect plausible mistakes, not random values.
- correct_answer_index is the zero-based position of the correct option.
- Write a clear one-line instruction telling the student what to do.
- The explanation must show the solution step by step.`

// buildUserMessage constructs the user message for a base question.
func buildUserMessage(base question.BaseQuestion) string {
	var b strings.Builder

	b.WriteString("Base question:\n")
	b.WriteString(strings.TrimSpace(base.SeedText))
	b.WriteString("\n\n")

	if base.Topic != "" {
		fmt.Fprintf(&b, "Topic: %s\n", base.Topic)
	}
	if base.Subject != "" || base.Unit != "" {
		fmt.Fprintf(&b, "Curriculum: %s -> %s -> %s\n", base.Subject, base.Unit, base.Topic)
	}
	fmt.Fprintf(&b, "Difficulty: %s\n", base.Difficulty)

	b.WriteString("\nCreate one new question similar to the base question, with the same concept and difficulty but a new scenario and new numbers.")

	return b.String()
}
