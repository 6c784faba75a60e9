// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/artw-stylekit/internal/generate"
	"github.com/pdiddy/artw-stylekit/internal/logging"
	"github.com/pdiddy/artw-stylekit/pkg/types"
)

type recordingLogger struct {
	warnings []string
}

func (r *recordingLogger) Debug(string, ...any)      {}
func (r *recordingLogger) Info(string, ...any)       {}
func (r *recordingLogger) Error(string, ...any)      {}
func (r *recordingLogger) Warn(msg string, _ ...any) { r.warnings = append(r.warnings, msg) }

const sampleOutline = `{
  "title": "Dijital Sanatta Yapay Zekâ",
  "abstract_tr": "Özet metni.",
  "keywords_tr": ["dijital sanat", "yapay zekâ"],
  "sections": [
    {
      "title": "Giriş",
      "subsections": ["Arka plan", {"title": "Yöntem", "content": "Yöntem metni."}],
      "estimated_words": 800,
      "key_points": ["bağlam"],
      "required_citations": 3
    }
  ],
  "references": ["Aydın, A. (2020). Kitap.", {"apa_citation": "Demir, B. (2021). Makale.", "year": 2021}]
}`

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "surrounding space", in: "  \n```json {\"a\":1} ```\n ", want: `{"a":1}`},
		{name: "open fence only", in: "```json\n{\"a\":1}", want: `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestParse(t *testing.T) {
	o, err := Parse("```json\n" + sampleOutline + "\n```")
	require.NoError(t, err)

	assert.Equal(t, "Dijital Sanatta Yapay Zekâ", o.Title)
	require.Len(t, o.Sections, 1)
	s := o.Sections[0]
	assert.Equal(t, 800, s.EstimatedWords)
	require.Len(t, s.Subsections, 2)
	assert.True(t, s.Subsections[0].Bare)
	assert.Equal(t, "Yöntem metni.", s.Subsections[1].Content)
	require.Len(t, o.References, 2)
	assert.Equal(t, "Aydın, A. (2020). Kitap.", o.References[0].Text())
	assert.Equal(t, "2021", o.References[1].Year)
}

func TestParse_MockPayload(t *testing.T) {
	o, err := Parse(generate.MockJSON)
	require.NoError(t, err)
	assert.Equal(t, "Mock Başlık - API Key Gerekli", o.Title)
	assert.Empty(t, o.Sections)
}

func TestParse_FormatErrors(t *testing.T) {
	tests := []struct {
		name         string
		in           string
		wantProblems bool
	}{
		{name: "prose", in: "Elbette, işte taslak:"},
		{name: "truncated", in: `{"title": "Yarım"`},
		{name: "missing sections", in: `{"title": "Başlık"}`, wantProblems: true},
		{name: "wrong type", in: `{"title": 3, "sections": []}`, wantProblems: true},
		{name: "array", in: `[1, 2]`, wantProblems: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			var fe *FormatError
			require.True(t, errors.As(err, &fe), "got %v", err)
			assert.Equal(t, tt.wantProblems, len(fe.Problems) > 0)
		})
	}
}

func TestSave_ValidOutline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "outline.json")
	log := &recordingLogger{}

	saved, err := Save(path, "```json\n"+sampleOutline+"\n```", log)
	require.NoError(t, err)
	assert.False(t, saved.Raw())
	assert.Empty(t, saved.RawPath)
	assert.Empty(t, log.warnings)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"title\": \"Dijital Sanatta Yapay Zekâ\""))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, saved.Outline, loaded)
}

func TestSave_RawFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outline.json")
	log := &recordingLogger{}
	response := "Üzgünüm, JSON üretemedim."

	saved, err := Save(path, response, log)
	require.NoError(t, err)
	assert.True(t, saved.Raw())
	assert.Error(t, saved.Err)
	assert.Equal(t, []string{"Response not JSON, saved raw"}, log.warnings)

	for _, p := range []string{path, saved.RawPath} {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, response, string(data))
	}
	assert.Equal(t, filepath.Join(filepath.Dir(path), "outline.raw.txt"), saved.RawPath)
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "outline.yaml")
	content := `title: Osmanlı Minyatürü
sections:
  - title: Giriş
    subsections:
      - Tarihçe
      - title: Atölyeler
        content: Nakkaşhane düzeni.
references:
  - "İnalcık, H. (1973). Osmanlı İmparatorluğu."
  - author: And, M.
    year: 1982
    title: Turkish Miniature Painting
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	o, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Osmanlı Minyatürü", o.Title)
	require.Len(t, o.Sections[0].Subsections, 2)
	assert.True(t, o.Sections[0].Subsections[0].Bare)
	assert.Equal(t, "Nakkaşhane düzeni.", o.Sections[0].Subsections[1].Content)
	assert.Equal(t, "And, M. (1982). Turkish Miniature Painting.", o.References[1].Text())
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "yok.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outline.yml")
	in := &types.Outline{
		Title:    "Başlık",
		Sections: []types.Section{{Title: "Giriş", EstimatedWords: 300}},
	}
	require.NoError(t, WriteYAML(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSave_NopLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "o.json")
	saved, err := Save(path, "not json", logging.Nop())
	require.NoError(t, err)
	assert.True(t, saved.Raw())
}
