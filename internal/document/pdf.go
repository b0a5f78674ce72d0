package document

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/Rupesh023/Question-gen/internal/question"
)

const (
	pageMargin = 15.0
	lineHeight = 5.5
)

// RenderPDF writes the worksheet as a PDF to path. Teacher mode prints
// the correct label and the explanation beneath each question.
func (c *Composer) RenderPDF(path string, mode Mode) error {
	pdf := c.buildPDF(mode)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return &RenderError{Path: path, Err: err}
	}
	return nil
}

func (c *Composer) buildPDF(mode Mode) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(c.title, true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AliasNbPages("")

	modeLabel := "Student Version"
	if mode.IncludeAnswers() {
		modeLabel = "Teacher Version (with answers)"
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// Title block.
	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, c.title, "", "C", false)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s — %s", modeLabel, time.Now().Format("January 2, 2006")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for i, q := range c.questions {
		c.renderQuestion(pdf, i+1, q, mode)
	}

	return pdf
}

func (c *Composer) renderQuestion(pdf *fpdf.Fpdf, num int, q question.GeneratedQuestion, mode Mode) {
	// Keep a question block from starting at the very bottom of a page.
	if _, pageH := pdf.GetPageSize(); pdf.GetY() > pageH-60 {
		pdf.AddPage()
	}

	pdf.SetFont("Helvetica", "B", 11)
	header := fmt.Sprintf("Question %d", num)
	if q.Topic != "" {
		header += fmt.Sprintf("  (%s, %s)", q.Topic, q.Difficulty)
	}
	pdf.MultiCell(0, lineHeight, header, "", "L", false)

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, lineHeight, q.Stem, "", "L", false)

	if q.Instruction != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, lineHeight, q.Instruction, "", "L", false)
	}
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "", 10)
	for i, opt := range q.Options {
		pdf.SetX(pageMargin + 5)
		pdf.MultiCell(0, lineHeight, fmt.Sprintf("(%s) %s", question.Labels[i], opt), "", "L", false)
	}

	if mode.IncludeAnswers() {
		pdf.Ln(1)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.MultiCell(0, lineHeight, fmt.Sprintf("Answer: %s", q.CorrectLabel), "", "L", false)
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, lineHeight, "Explanation: "+q.Explanation, "", "L", false)
	}

	pdf.Ln(5)
}
