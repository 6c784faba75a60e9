// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus reads and writes the JSONL corpus file produced by ingestion.
// Each line holds one types.Document.
package corpus

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/artw-stylekit/pkg/types"
)

// maxLineSize bounds a single JSONL record. Extracted books can run to
// several megabytes of text.
const maxLineSize = 64 << 20

// ErrMissingText is wrapped by RecordError when a record has no text field.
var ErrMissingText = errors.New("record has no text field")

// RecordError reports a malformed corpus line.
type RecordError struct {
	// Line is the 1-based line number in the corpus file.
	Line int
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("corpus line %d: %v", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// record mirrors types.Document with a pointer text field so a missing key
// can be told apart from an empty string.
type record struct {
	Text     *string                `json:"text"`
	Metadata types.DocumentMetadata `json:"metadata"`
	Path     string                 `json:"path"`
}

// Load reads the corpus file at path.
func Load(path string) ([]types.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	defer f.Close()

	docs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading corpus %s: %w", path, err)
	}
	return docs, nil
}

// Read parses JSONL records from r. Blank lines are skipped. The first line
// that is not valid JSON or lacks a text field stops the read with a
// *RecordError.
func Read(r io.Reader) ([]types.Document, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1<<20), maxLineSize)

	var docs []types.Document
	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}

		var rec record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, &RecordError{Line: line, Err: err}
		}
		if rec.Text == nil {
			return nil, &RecordError{Line: line, Err: ErrMissingText}
		}
		docs = append(docs, types.Document{
			Text:     *rec.Text,
			Metadata: rec.Metadata,
			Path:     rec.Path,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning line %d: %w", line+1, err)
	}
	return docs, nil
}

// Write encodes docs as JSONL to w. Non-ASCII text is written as-is.
func Write(w io.Writer, docs []types.Document) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	for i, d := range docs {
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encoding record %d: %w", i+1, err)
		}
	}
	return bw.Flush()
}

// Save writes docs to path, creating parent directories as needed.
func Save(path string, docs []types.Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating corpus directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating corpus file: %w", err)
	}
	if err := Write(f, docs); err != nil {
		f.Close()
		return fmt.Errorf("writing corpus %s: %w", path, err)
	}
	return f.Close()
}
