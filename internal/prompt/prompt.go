// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt renders generation prompts from a style profile. Every
// prompt starts with a preamble describing the corpus style, followed by a
// body specific to the request. Rendering is deterministic and does no I/O.
package prompt

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/pdiddy/artw-stylekit/pkg/types"
)

const (
	// defaultAvgLength stands in for a profile without a document length.
	defaultAvgLength = 4000

	// preambleTerms is the number of top vocabulary terms listed.
	preambleTerms = 20
)

// Render produces the prompt for req using the style in p.
func Render(req Request, p types.StyleProfile) (string, error) {
	if isNil(req) {
		return "", fmt.Errorf("prompt request is nil")
	}
	preamble, err := execute(preambleTmpl, preambleData(p))
	if err != nil {
		return "", fmt.Errorf("rendering preamble: %w", err)
	}

	switch r := req.(type) {
	case Outline:
		return execute(outlineTmpl, struct{ Preamble, Topic string }{preamble, r.Topic})
	case *Outline:
		return Render(*r, p)
	case Section:
		return execute(sectionTmpl, sectionData(preamble, r))
	case *Section:
		return Render(*r, p)
	case CitationList:
		n := r.MinReferences
		if n == 0 {
			n = DefaultMinReferences
		}
		return execute(citationTmpl, struct {
			Preamble, Topic string
			MinReferences   int
		}{preamble, r.Topic, n})
	case *CitationList:
		return Render(*r, p)
	default:
		return "", fmt.Errorf("unknown prompt request %T", req)
	}
}

// Bundle renders the outline and citation prompts for topic into a single
// text document, each under a titled rule.
func Bundle(topic string, p types.StyleProfile) (string, error) {
	outline, err := Render(Outline{Topic: topic}, p)
	if err != nil {
		return "", err
	}
	citations, err := Render(CitationList{Topic: topic}, p)
	if err != nil {
		return "", err
	}

	rule := strings.Repeat("=", 80)
	var b strings.Builder
	fmt.Fprintf(&b, "%s\nOUTLINE PROMPT\n%s\n\n", rule, rule)
	b.WriteString(outline)
	fmt.Fprintf(&b, "\n\n%s\nCITATION PROMPT\n%s\n\n", rule, rule)
	b.WriteString(citations)
	return b.String(), nil
}

type preamble struct {
	AvgLength        int
	AvgSentence      string
	LexicalDiversity string
	DocCount         int
	TopTerms         string
}

func preambleData(p types.StyleProfile) preamble {
	avg := int(p.AverageDocumentLength)
	if p.AverageDocumentLength <= 0 {
		avg = defaultAvgLength
	}
	return preamble{
		AvgLength:        avg,
		AvgSentence:      formatFloat(p.SentenceStructure.AverageLength),
		LexicalDiversity: formatFloat(p.Vocabulary.LexicalDiversity),
		DocCount:         p.DocumentCount,
		TopTerms:         strings.Join(p.Vocabulary.TopWords.Terms(preambleTerms), ", "),
	}
}

func sectionData(preamble string, s Section) any {
	words := s.EstimatedWords
	if words == 0 {
		words = DefaultEstimatedWords
	}
	cites := s.MinCitations
	if cites == 0 {
		cites = DefaultMinCitations
	}
	return struct {
		Preamble, ArticleTitle, SectionTitle, KeyPoints string
		EstimatedWords, MinCitations                    int
	}{
		Preamble:       preamble,
		ArticleTitle:   s.ArticleTitle,
		SectionTitle:   s.SectionTitle,
		KeyPoints:      strings.Join(s.KeyPoints, ", "),
		EstimatedWords: words,
		MinCitations:   cites,
	}
}

// formatFloat prints the shortest exact decimal and always keeps a
// fractional part, so 3 renders as "3.0".
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func execute(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
