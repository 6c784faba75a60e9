// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prompt

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Defaults applied when a request leaves a count at zero.
const (
	DefaultMinReferences  = 25
	DefaultEstimatedWords = 500
	DefaultMinCitations   = 2
)

// Request is a generation task to render a prompt for. The set of
// implementations is closed: Outline, Section and CitationList.
type Request interface {
	// Kind names the request variant ("outline", "section", "citations").
	Kind() string
	isRequest()
}

// Outline asks for a structured article outline on a topic.
type Outline struct {
	Topic string `validate:"required"`
}

// Section asks for the prose of one article section.
type Section struct {
	ArticleTitle   string `validate:"required"`
	SectionTitle   string `validate:"required"`
	EstimatedWords int    `validate:"gte=0"`
	KeyPoints      []string
	MinCitations   int `validate:"gte=0"`
}

// CitationList asks for a bibliography on a topic.
type CitationList struct {
	Topic         string `validate:"required"`
	MinReferences int    `validate:"gte=0"`
}

func (Outline) Kind() string      { return "outline" }
func (Section) Kind() string      { return "section" }
func (CitationList) Kind() string { return "citations" }

func (Outline) isRequest()      {}
func (Section) isRequest()      {}
func (CitationList) isRequest() {}

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that req carries the fields its variant needs. Render does
// not require this; it is meant for checking user input at the CLI.
func Validate(req Request) error {
	if isNil(req) {
		return fmt.Errorf("prompt request is nil")
	}
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("invalid %s request: %w", req.Kind(), err)
	}
	return nil
}

// isNil reports whether req is nil or a nil pointer variant.
func isNil(req Request) bool {
	switch r := req.(type) {
	case nil:
		return true
	case *Outline:
		return r == nil
	case *Section:
		return r == nil
	case *CitationList:
		return r == nil
	default:
		return false
	}
}
