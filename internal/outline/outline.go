// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package outline turns model output into article outlines and persists them.
// Responses are cleaned of Markdown code fences, parsed as JSON and checked
// against a minimal schema. Output that does not fit is kept verbatim so no
// generation is lost.
package outline

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/artw-stylekit/internal/logging"
	"github.com/pdiddy/artw-stylekit/pkg/types"
)

// schema accepts the shapes models actually produce: subsections and
// references may be plain strings or objects.
const schema = `{
  "type": "object",
  "required": ["title", "sections"],
  "properties": {
    "title": {"type": "string"},
    "abstract_tr": {"type": "string"},
    "abstract_en": {"type": "string"},
    "keywords_tr": {"type": "array", "items": {"type": "string"}},
    "keywords_en": {"type": "array", "items": {"type": "string"}},
    "sections": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title"],
        "properties": {
          "title": {"type": "string"},
          "subsections": {
            "type": "array",
            "items": {"type": ["string", "object"]}
          },
          "estimated_words": {"type": "integer"},
          "key_points": {"type": "array", "items": {"type": "string"}},
          "required_citations": {"type": "integer"},
          "content": {"type": "string"}
        }
      }
    },
    "references": {"type": "array", "items": {"type": ["string", "object"]}},
    "required_visuals": {"type": "array", "items": {"type": "object"}},
    "min_references": {"type": "integer"}
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(schema)

// FormatError reports model output that is not a usable outline.
type FormatError struct {
	// Problems lists schema violations. Empty when the text is not JSON.
	Problems []string
	Err      error
}

func (e *FormatError) Error() string {
	if len(e.Problems) > 0 {
		return "outline does not match format: " + strings.Join(e.Problems, "; ")
	}
	return fmt.Sprintf("outline is not valid JSON: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Clean strips surrounding whitespace and a Markdown code fence, with or
// without a json language tag.
func Clean(raw string) string {
	s := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(s, "```json"):
		s = s[len("```json"):]
	case strings.HasPrefix(s, "```"):
		s = s[len("```"):]
	}
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// Parse cleans raw, checks it against the outline format and decodes it.
// Failures are returned as *FormatError.
func Parse(raw string) (*types.Outline, error) {
	cleaned := Clean(raw)
	if !json.Valid([]byte(cleaned)) {
		var probe any
		return nil, &FormatError{Err: json.Unmarshal([]byte(cleaned), &probe)}
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewStringLoader(cleaned))
	if err != nil {
		return nil, &FormatError{Err: err}
	}
	if !result.Valid() {
		fe := &FormatError{Err: errors.New("schema mismatch")}
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			fe.Problems = append(fe.Problems, field+": "+desc.Description())
		}
		return nil, fe
	}

	var o types.Outline
	if err := json.Unmarshal([]byte(cleaned), &o); err != nil {
		return nil, &FormatError{Err: err}
	}
	return &o, nil
}

// Saved describes what Save wrote.
type Saved struct {
	Outline *types.Outline
	Path    string

	// RawPath is set when the response was kept verbatim.
	RawPath string
	Err     error
}

// Raw reports whether the response could not be parsed.
func (s Saved) Raw() bool { return s.Outline == nil }

// Save writes a model response to path. A valid outline is written as
// indented JSON with its original keys. Anything else is written verbatim to
// path and to a sibling .raw.txt file, and a warning is logged. The returned
// error is reserved for I/O failures.
func Save(path, response string, log logging.Logger) (Saved, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Saved{}, fmt.Errorf("creating output directory: %w", err)
	}

	o, perr := Parse(response)
	if perr == nil {
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(Clean(response)), "", "  "); err != nil {
			return Saved{}, fmt.Errorf("formatting outline: %w", err)
		}
		buf.WriteByte('\n')
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return Saved{}, fmt.Errorf("writing outline: %w", err)
		}
		return Saved{Outline: o, Path: path}, nil
	}

	rawPath := RawPath(path)
	for _, p := range []string{path, rawPath} {
		if err := os.WriteFile(p, []byte(response), 0o644); err != nil {
			return Saved{}, fmt.Errorf("writing raw response: %w", err)
		}
	}
	log.Warn("Response not JSON, saved raw", "path", path, "raw", rawPath, "error", perr)
	return Saved{Path: path, RawPath: rawPath, Err: perr}, nil
}

// RawPath names the verbatim copy kept next to an outline file.
func RawPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".raw.txt"
}

// Load reads an outline from a .json, .yaml or .yml file.
func Load(path string) (*types.Outline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading outline: %w", err)
	}

	var o types.Outline
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &o); err != nil {
			return nil, fmt.Errorf("parsing outline %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &o); err != nil {
			return nil, fmt.Errorf("parsing outline %s: %w", path, err)
		}
	}
	return &o, nil
}

// WriteYAML writes o as YAML.
func WriteYAML(path string, o *types.Outline) error {
	data, err := yaml.Marshal(o)
	if err != nil {
		return fmt.Errorf("encoding outline: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing outline: %w", err)
	}
	return nil
}
