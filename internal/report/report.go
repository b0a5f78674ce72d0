// Package report renders per-question progress and the final run summary
// to the console. It is the only user-facing surface of a run: every input
// question gets a line saying whether it succeeded or which stage failed.
package report

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
)

var (
	styleOK      = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true)
	styleFail    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F43F5E")).Bold(true)
	styleStage   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	styleHeading = lipgloss.NewStyle().Bold(true)
)

// Stage names a pipeline stage for failure attribution.
type Stage string

const (
	StageValidate Stage = "validate"
	StageGenerate Stage = "generate"
	StageParse    Stage = "parse"
	StageRender   Stage = "render"
)

// Reporter writes run progress to w, one line per question.
type Reporter struct {
	w     io.Writer
	total int

	succeeded int
	failed    int
}

// New creates a Reporter for a run over total questions.
func New(w io.Writer, total int) *Reporter {
	return &Reporter{w: w, total: total}
}

// Start announces the run.
func (r *Reporter) Start(title, model string) {
	fmt.Fprintf(r.w, "%s\n", styleHeading.Render(title))
	fmt.Fprintf(r.w, "%s\n\n", styleDim.Render(fmt.Sprintf("%d questions via %s", r.total, model)))
}

// Generating announces that question num is being processed.
func (r *Reporter) Generating(num int, topic string) {
	label := fmt.Sprintf("[%d/%d]", num, r.total)
	if topic != "" {
		fmt.Fprintf(r.w, "%s generating (%s)... ", styleDim.Render(label), topic)
	} else {
		fmt.Fprintf(r.w, "%s generating... ", styleDim.Render(label))
	}
}

// Success records and prints a successful generation.
func (r *Reporter) Success() {
	r.succeeded++
	fmt.Fprintf(r.w, "%s\n", styleOK.Render("ok"))
}

// Failure records and prints a failed question with the stage that failed.
func (r *Reporter) Failure(stage Stage, err error) {
	r.failed++
	fmt.Fprintf(r.w, "%s %s: %v\n", styleFail.Render("failed"), styleStage.Render(string(stage)), err)
}

// Summary prints the final outcome and the rendered output paths.
func (r *Reporter) Summary(outputs []string) {
	fmt.Fprintln(r.w)
	if r.failed == 0 {
		fmt.Fprintf(r.w, "%s %d/%d questions generated\n", styleOK.Render("done:"), r.succeeded, r.total)
	} else {
		fmt.Fprintf(r.w, "%s %d/%d questions generated, %d failed\n",
			styleFail.Render("done with failures:"), r.succeeded, r.total, r.failed)
	}
	for _, out := range outputs {
		fmt.Fprintf(r.w, "  wrote %s\n", out)
	}
}

// Succeeded returns the number of successful questions so far.
func (r *Reporter) Succeeded() int { return r.succeeded }

// Failed returns the number of failed questions so far.
func (r *Reporter) Failed() int { return r.failed }
