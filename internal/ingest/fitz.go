// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/pdiddy/artw-stylekit/pkg/types"
)

// FitzExtractor extracts text and metadata with MuPDF.
type FitzExtractor struct{}

// Extract implements Extractor. Page texts are joined with newlines and the
// result is trimmed.
func (FitzExtractor) Extract(path string) (types.Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return types.Document{}, fmt.Errorf("opening pdf: %w", err)
	}
	defer doc.Close()

	n := doc.NumPage()
	var b strings.Builder
	for i := 0; i < n; i++ {
		text, err := doc.Text(i)
		if err != nil {
			return types.Document{}, fmt.Errorf("reading page %d: %w", i+1, err)
		}
		b.WriteString(text)
		if !strings.HasSuffix(text, "\n") {
			b.WriteByte('\n')
		}
	}

	meta := doc.Metadata()
	return types.Document{
		Text: strings.TrimSpace(b.String()),
		Metadata: types.DocumentMetadata{
			Filename:  filepath.Base(path),
			PageCount: n,
			Author:    meta["author"],
			Title:     meta["title"],
		},
		Path: path,
	}, nil
}
