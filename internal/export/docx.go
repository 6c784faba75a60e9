// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"io"
	"strconv"

	"github.com/fumiama/go-docx"
)

const (
	fontName = "Times New Roman"

	bodyPoints  = 12
	titlePoints = 26
)

// DOCX renders into an in-memory document. Headings are bold runs sized
// by level: 14-level points, with the title at 26 points and centered.
type DOCX struct {
	doc *docx.Docx
}

// NewDOCX returns an empty document with the default theme.
func NewDOCX() *DOCX {
	return &DOCX{doc: docx.New().WithDefaultTheme()}
}

// Heading implements Writer.
func (d *DOCX) Heading(text string, level int) {
	p := d.doc.AddParagraph()
	points := 14 - level
	if level == 0 {
		points = titlePoints
		p.Justification("center")
	}
	styled(p.AddText(text), points).Bold()
}

// Paragraph implements Writer.
func (d *DOCX) Paragraph(runs ...Run) {
	p := d.doc.AddParagraph()
	for _, r := range runs {
		run := styled(p.AddText(r.Text), bodyPoints)
		if r.Bold {
			run.Bold()
		}
		if r.Italic {
			run.Italic()
		}
	}
}

// PageBreak implements Writer.
func (d *DOCX) PageBreak() {
	d.doc.AddParagraph().AddPageBreaks()
}

// WriteTo implements io.WriterTo.
func (d *DOCX) WriteTo(w io.Writer) (int64, error) {
	return d.doc.WriteTo(w)
}

// styled applies the document font. Sizes are in half points.
func styled(r *docx.Run, points int) *docx.Run {
	return r.Font(fontName, fontName, fontName, "").Size(strconv.Itoa(points * 2))
}
