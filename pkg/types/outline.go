// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v3"
)

// Outline is a generated article outline. Sections may carry written content;
// when they do not, exporters emit a placeholder built from the estimates.
type Outline struct {
	Title           string      `json:"title" yaml:"title"`
	AbstractTR      string      `json:"abstract_tr,omitempty" yaml:"abstract_tr,omitempty"`
	AbstractEN      string      `json:"abstract_en,omitempty" yaml:"abstract_en,omitempty"`
	KeywordsTR      []string    `json:"keywords_tr,omitempty" yaml:"keywords_tr,omitempty"`
	KeywordsEN      []string    `json:"keywords_en,omitempty" yaml:"keywords_en,omitempty"`
	Sections        []Section   `json:"sections" yaml:"sections"`
	RequiredVisuals []Visual    `json:"required_visuals,omitempty" yaml:"required_visuals,omitempty"`
	References      []Reference `json:"references,omitempty" yaml:"references,omitempty"`
	MinReferences   int         `json:"min_references,omitempty" yaml:"min_references,omitempty"`
}

// Section is one top-level article section.
type Section struct {
	Title             string       `json:"title" yaml:"title"`
	Subsections       []Subsection `json:"subsections,omitempty" yaml:"subsections,omitempty"`
	EstimatedWords    int          `json:"estimated_words,omitempty" yaml:"estimated_words,omitempty"`
	KeyPoints         []string     `json:"key_points,omitempty" yaml:"key_points,omitempty"`
	RequiredCitations int          `json:"required_citations,omitempty" yaml:"required_citations,omitempty"`
	Content           string       `json:"content,omitempty" yaml:"content,omitempty"`
}

// Subsection is a second-level heading. Outlines write it either as a bare
// title string or as an object with title and content.
type Subsection struct {
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content,omitempty" yaml:"content,omitempty"`

	// Bare is true when the subsection was given as a plain string.
	Bare bool `json:"-" yaml:"-"`
}

// UnmarshalJSON accepts a string or a {title, content} object.
func (s *Subsection) UnmarshalJSON(data []byte) error {
	var title string
	if err := json.Unmarshal(data, &title); err == nil {
		*s = Subsection{Title: title, Bare: true}
		return nil
	}
	type plain Subsection
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("subsection: %w", err)
	}
	*s = Subsection(p)
	return nil
}

// UnmarshalYAML accepts a scalar or a mapping.
func (s *Subsection) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*s = Subsection{Title: node.Value, Bare: true}
		return nil
	}
	type plain Subsection
	var p plain
	if err := node.Decode(&p); err != nil {
		return fmt.Errorf("subsection: %w", err)
	}
	*s = Subsection(p)
	return nil
}

// Visual is a figure the article is expected to include.
type Visual struct {
	Number          int    `json:"number" yaml:"number"`
	Description     string `json:"description" yaml:"description"`
	SuggestedSource string `json:"suggested_source,omitempty" yaml:"suggested_source,omitempty"`
}

// Reference is one bibliography entry. Outlines write it either as a
// formatted citation string or as an object.
type Reference struct {
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	APACitation string `json:"apa_citation,omitempty" yaml:"apa_citation,omitempty"`
	Citation    string `json:"citation,omitempty" yaml:"citation,omitempty"`
	Author      string `json:"author,omitempty" yaml:"author,omitempty"`
	Year        string `json:"year,omitempty" yaml:"year,omitempty"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	DOI         string `json:"doi,omitempty" yaml:"doi,omitempty"`
}

// Text returns the display form: the APA citation, then the plain
// citation, then "Author (Year). Title." assembled from the parts.
func (r Reference) Text() string {
	switch {
	case r.APACitation != "":
		return r.APACitation
	case r.Citation != "":
		return r.Citation
	case r.Author != "" && r.Year != "":
		return fmt.Sprintf("%s (%s). %s.", r.Author, r.Year, r.Title)
	default:
		return r.Title
	}
}

// UnmarshalJSON accepts a string or an object. Numeric years are kept as text.
func (r *Reference) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = Reference{Citation: s}
		return nil
	}
	var raw struct {
		Type        string          `json:"type"`
		APACitation string          `json:"apa_citation"`
		Citation    string          `json:"citation"`
		Author      string          `json:"author"`
		Year        json.RawMessage `json:"year"`
		Title       string          `json:"title"`
		DOI         *string         `json:"doi"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("reference: %w", err)
	}
	*r = Reference{
		Type:        raw.Type,
		APACitation: raw.APACitation,
		Citation:    raw.Citation,
		Author:      raw.Author,
		Title:       raw.Title,
		Year:        yearText(raw.Year),
	}
	if raw.DOI != nil {
		r.DOI = *raw.DOI
	}
	return nil
}

// UnmarshalYAML accepts a scalar or a mapping.
func (r *Reference) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*r = Reference{Citation: node.Value}
		return nil
	}
	type plain Reference
	var p plain
	if err := node.Decode(&p); err != nil {
		return fmt.Errorf("reference: %w", err)
	}
	*r = Reference(p)
	return nil
}

func yearText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
