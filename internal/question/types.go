package question

import "fmt"

// OptionCount is the fixed number of answer options per generated question.
const OptionCount = 5

// Labels are the option labels in display order.
var Labels = [OptionCount]string{"A", "B", "C", "D", "E"}

// Difficulty is the intended difficulty of a base question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// BaseQuestion is a teacher-supplied seed problem used to derive a variation.
type BaseQuestion struct {
	// Topic is the curriculum topic, e.g. "Counting & Arrangement Problems".
	Topic string `yaml:"topic"`

	// Subject and Unit are optional curriculum tags carried through to the
	// rendered output, e.g. "Quantitative Math" / "Data Analysis & Probability".
	Subject string `yaml:"subject"`
	Unit    string `yaml:"unit"`

	// Difficulty the variation must preserve.
	Difficulty Difficulty `yaml:"difficulty"`

	// SeedText is the full text of the base problem, including its options.
	SeedText string `yaml:"seed"`
}

// Validate checks that the base question is usable as a generation seed.
func (b BaseQuestion) Validate() error {
	if b.SeedText == "" {
		return &ValidationError{Field: "seed", Message: "seed text is empty"}
	}
	switch b.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	case "":
		return &ValidationError{Field: "difficulty", Message: "difficulty is required"}
	default:
		return &ValidationError{
			Field:   "difficulty",
			Message: fmt.Sprintf("unknown difficulty %q (want easy, medium, or hard)", b.Difficulty),
		}
	}
	return nil
}

// GeneratedQuestion is the AI-produced variant of a base question.
type GeneratedQuestion struct {
	// Stem is the question text shown to the student.
	Stem string

	// Instruction is a one-line direction for the student, e.g.
	// "Calculate the total number of possible combinations."
	Instruction string

	// Options holds exactly five answer options, displayed with labels A-E.
	Options [OptionCount]string

	// CorrectLabel is the label of the correct option, one of A-E.
	CorrectLabel string

	// Explanation is the step-by-step worked solution.
	Explanation string

	// Difficulty is the difficulty the model reports for its variation.
	Difficulty Difficulty

	// Curriculum tags copied from the base question.
	Topic   string
	Subject string
	Unit    string
}

// CorrectIndex returns the zero-based index of the correct option.
// The parser guarantees CorrectLabel is one of A-E, so lookup cannot fail
// for a parsed question; -1 is returned for a hand-built invalid one.
func (q GeneratedQuestion) CorrectIndex() int {
	for i, l := range Labels {
		if l == q.CorrectLabel {
			return i
		}
	}
	return -1
}

// ValidationError reports a malformed base question or question set entry.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ParseError reports model output that does not match the requested shape.
// A ParseError always means the whole question was rejected; the pipeline
// never keeps a partially-filled question.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse model response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parse model response: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }
