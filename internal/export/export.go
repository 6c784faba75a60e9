// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export lays an article outline out as a word-processor document.
// Build walks the outline and drives a Writer; the DOCX writer renders it
// with go-docx.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/artw-stylekit/internal/outline"
	"github.com/pdiddy/artw-stylekit/pkg/types"
)

// Run is a span of text with character formatting.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// Writer receives the document structure in reading order.
type Writer interface {
	// Heading adds a heading. Level 0 is the document title.
	Heading(text string, level int)
	Paragraph(runs ...Run)
	PageBreak()
	io.WriterTo
}

// Plain is a single unformatted run.
func Plain(text string) Run { return Run{Text: text} }

// Build writes o to w: the title, the Turkish and English abstracts with
// keywords, each section with its subsections, and the bibliography. Sections
// without content get a writing brief built from their estimates.
func Build(o *types.Outline, w Writer) {
	w.Heading(outline.Title(o), 0)

	w.Heading("Özet", 1)
	w.Paragraph(Plain(o.AbstractTR))
	w.Paragraph(
		Run{Text: "Anahtar Kelimeler: ", Bold: true},
		Run{Text: strings.Join(o.KeywordsTR, ", "), Italic: true},
	)

	w.Paragraph()

	w.Heading("Abstract", 1)
	w.Paragraph(Plain(o.AbstractEN))
	w.Paragraph(
		Run{Text: "Keywords: ", Bold: true},
		Run{Text: strings.Join(o.KeywordsEN, ", "), Italic: true},
	)

	w.PageBreak()

	for _, s := range o.Sections {
		w.Heading(s.Title, 1)
		w.Paragraph(Plain(outline.SectionBody(s)))
		for _, sub := range s.Subsections {
			w.Heading(sub.Title, 2)
			w.Paragraph(Plain(outline.SubsectionBody(sub)))
		}
	}

	w.PageBreak()
	w.Heading("Kaynakça", 1)
	if len(o.References) == 0 {
		w.Paragraph(Plain(outline.ReferencesPlaceholder))
		return
	}
	for _, r := range o.References {
		w.Paragraph(Plain(r.Text()))
	}
}

// SaveDOCX builds o as a DOCX file at path, creating parent directories.
func SaveDOCX(path string, o *types.Outline) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	w := NewDOCX()
	Build(o, w)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := w.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
