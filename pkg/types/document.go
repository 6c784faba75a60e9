// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DocumentMetadata holds the descriptive fields read from a source PDF.
type DocumentMetadata struct {
	// Filename is the base name of the source file.
	Filename string `json:"filename" yaml:"filename"`

	// PageCount is the number of pages in the source file.
	PageCount int `json:"pages" yaml:"pages"`

	// Author is the author recorded in the PDF info dictionary, if any.
	Author string `json:"author" yaml:"author"`

	// Title is the title recorded in the PDF info dictionary, if any.
	Title string `json:"title" yaml:"title"`
}

// Document is one corpus record: the extracted plain text of a source file
// plus its metadata. Documents are immutable once loaded.
type Document struct {
	// Text is the full extracted text, trimmed of surrounding whitespace.
	Text string `json:"text" yaml:"text"`

	// Metadata describes the source file.
	Metadata DocumentMetadata `json:"metadata" yaml:"metadata"`

	// Path is the source file path at ingestion time.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}
