package document

import (
	"fmt"

	"github.com/Rupesh023/Question-gen/internal/question"
)

// Mode selects whether the rendered worksheet carries the answer key.
type Mode string

const (
	// ModeTeacher prints the correct label and explanation under each question.
	ModeTeacher Mode = "teacher"

	// ModeStudent omits answers and explanations.
	ModeStudent Mode = "student"
)

// IncludeAnswers reports whether this mode shows the answer key.
func (m Mode) IncludeAnswers() bool { return m == ModeTeacher }

// ParseMode validates a mode string from the CLI.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeTeacher, ModeStudent:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown mode %q (want teacher or student)", s)
	}
}

// Composer accumulates generated questions and renders them into a
// worksheet. Output order always matches append order, and rendering is a
// pure function of the accumulated sequence plus the mode, so rendering
// twice produces the same document.
type Composer struct {
	title     string
	questions []question.GeneratedQuestion
}

// NewComposer creates an empty Composer with the given worksheet title.
func NewComposer(title string) *Composer {
	if title == "" {
		title = "Math Practice Worksheet"
	}
	return &Composer{title: title}
}

// AddQuestion appends a question to the worksheet.
func (c *Composer) AddQuestion(q question.GeneratedQuestion) {
	c.questions = append(c.questions, q)
}

// Len returns the number of accumulated questions.
func (c *Composer) Len() int { return len(c.questions) }

// RenderError reports a failure to write the output document.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
