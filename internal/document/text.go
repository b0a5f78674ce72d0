package document

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Rupesh023/Question-gen/internal/question"
)

// RenderText writes the worksheet in the @-tag assessment format to path.
func (c *Composer) RenderText(path string, mode Mode) error {
	f, err := os.Create(path)
	if err != nil {
		return &RenderError{Path: path, Err: err}
	}
	defer f.Close()

	if err := c.WriteText(f, mode); err != nil {
		return &RenderError{Path: path, Err: err}
	}
	return nil
}

// WriteText writes the @-tag representation of the worksheet. One block
// per question; in teacher mode the correct option is marked @@option and
// the explanation block is included.
func (c *Composer) WriteText(w io.Writer, mode Mode) error {
	for i, q := range c.questions {
		if err := writeQuestionText(w, i+1, q, mode); err != nil {
			return err
		}
	}
	return nil
}

func writeQuestionText(w io.Writer, num int, q question.GeneratedQuestion, mode Mode) error {
	var b strings.Builder

	fmt.Fprintf(&b, "@title Math Assessment Question %d\n\n", num)
	fmt.Fprintf(&b, "@question %s\n\n", q.Stem)
	if q.Instruction != "" {
		fmt.Fprintf(&b, "@instruction %s\n\n", q.Instruction)
	}
	fmt.Fprintf(&b, "@difficulty %s\n\n", q.Difficulty)
	fmt.Fprintf(&b, "@order %d\n\n", num)

	for i, opt := range q.Options {
		marker := "@option"
		if mode.IncludeAnswers() && question.Labels[i] == q.CorrectLabel {
			marker = "@@option"
		}
		fmt.Fprintf(&b, "%s %s\n\n", marker, opt)
	}

	if mode.IncludeAnswers() {
		fmt.Fprintf(&b, "@explanation\n%s\n\n", q.Explanation)
	}

	if q.Subject != "" {
		fmt.Fprintf(&b, "@subject %s\n\n", q.Subject)
	}
	if q.Unit != "" {
		fmt.Fprintf(&b, "@unit %s\n\n", q.Unit)
	}
	if q.Topic != "" {
		fmt.Fprintf(&b, "@topic %s\n\n", q.Topic)
	}
	fmt.Fprintf(&b, "@plusmarks 1\n\n---\n\n")

	_, err := io.WriteString(w, b.String())
	return err
}
