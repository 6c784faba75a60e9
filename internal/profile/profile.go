// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package profile computes the stylistic profile of a document corpus:
// vocabulary statistics, sentence lengths, citation pattern counts, and
// recurring domain terminology. Analyze is a pure function of its input.
package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/artw-stylekit/pkg/types"
)

const (
	topWordsLimit    = 50
	terminologyLimit = 100

	// terminologyMinCount is the smallest count a term needs to be listed.
	// Terms must occur more than three times.
	terminologyMinCount = 4
)

var (
	// wordPattern matches word runs. Go's \w is ASCII-only, so letters,
	// marks and digits are spelled out to cover Turkish text.
	wordPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+`)

	sentenceBreak = regexp.MustCompile(`[.!?]+`)

	// inTextPattern matches (Aydın, 2020), (Aydın ve Demir, 2021) and the
	// same forms with a trailing page, as in (Aydın, 2020, s. 45-47).
	inTextPattern = regexp.MustCompile(
		`\([A-ZÇĞİÖŞÜ][a-zçğıöşü]+(?:\s+(?:ve|and|&)\s+[A-ZÇĞİÖŞÜ][a-zçğıöşü]+)?,\s*\d{4}(?:,\s*s\.\s*\d+(?:-\d+)?)?\)`)

	etAlPattern    = regexp.MustCompile(`et\s+al\.`)
	pageRefPattern = regexp.MustCompile(`s\.\s*\d+`)
	termPattern    = regexp.MustCompile(`^[A-ZÇĞİÖŞÜ][a-zçğıöşü]{3,}$`)
)

// Analyze computes the style profile of docs. An empty slice yields a profile
// of zeros with empty lists.
func Analyze(docs []types.Document) types.StyleProfile {
	p := types.StyleProfile{
		DocumentCount: len(docs),
		Vocabulary: types.VocabularyStats{
			TopWords: types.TermFrequencies{},
		},
		Terminology: []string{},
	}
	if len(docs) == 0 {
		return p
	}

	texts := make([]string, len(docs))
	totalWords := 0
	for i, d := range docs {
		texts[i] = d.Text
		totalWords += len(strings.Fields(d.Text))
	}
	p.AverageDocumentLength = float64(totalWords) / float64(len(docs))
	p.Vocabulary = vocabulary(texts)
	p.SentenceStructure = sentences(texts)
	p.Citations = citations(texts)
	p.Terminology = terminology(texts)
	return p
}

func vocabulary(texts []string) types.VocabularyStats {
	// A Caser holds state and is not safe for concurrent use.
	lower := cases.Lower(language.Turkish)
	words := newCounter()
	total := 0
	for _, text := range texts {
		for _, w := range wordPattern.FindAllString(lower.String(text), -1) {
			words.add(w)
			total++
		}
	}

	v := types.VocabularyStats{
		TotalTokens:  total,
		UniqueTokens: words.len(),
		TopWords:     words.top(topWordsLimit, 1),
	}
	if total > 0 {
		v.LexicalDiversity = float64(v.UniqueTokens) / float64(total)
	}
	return v
}

func sentences(texts []string) types.SentenceStats {
	var lengths []int
	for _, text := range texts {
		for _, s := range sentenceBreak.Split(text, -1) {
			if s = strings.TrimSpace(s); s == "" {
				continue
			}
			lengths = append(lengths, len(strings.Fields(s)))
		}
	}
	if len(lengths) == 0 {
		return types.SentenceStats{}
	}

	sum := 0
	for _, n := range lengths {
		sum += n
	}
	slices.Sort(lengths)
	return types.SentenceStats{
		AverageLength: float64(sum) / float64(len(lengths)),
		MedianLength:  lengths[len(lengths)/2],
		Total:         len(lengths),
	}
}

func citations(texts []string) types.CitationCounts {
	var c types.CitationCounts
	for _, text := range texts {
		c.InText += len(inTextPattern.FindAllStringIndex(text, -1))
		c.EtAl += countEtAl(text)
		c.PageRef += len(pageRefPattern.FindAllStringIndex(text, -1))
	}
	return c
}

// countEtAl counts "et al." occurrences that stand as whole words: not
// preceded by a word character and not followed by one.
func countEtAl(text string) int {
	n := 0
	for _, loc := range etAlPattern.FindAllStringIndex(text, -1) {
		if before, _ := utf8.DecodeLastRuneInString(text[:loc[0]]); isWordRune(before) {
			continue
		}
		if after, _ := utf8.DecodeRuneInString(text[loc[1]:]); isWordRune(after) {
			continue
		}
		n++
	}
	return n
}

func isWordRune(r rune) bool {
	if r == utf8.RuneError {
		return false
	}
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

func terminology(texts []string) []string {
	terms := newCounter()
	for _, text := range texts {
		for _, w := range wordPattern.FindAllString(text, -1) {
			if termPattern.MatchString(w) {
				terms.add(w)
			}
		}
	}
	return terms.top(terminologyLimit, terminologyMinCount).Terms(-1)
}

// Marshal encodes p as indented JSON with non-ASCII text kept verbatim.
// Equal profiles always encode to identical bytes.
func Marshal(p types.StyleProfile) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("encoding profile: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes p to path as JSON, creating parent directories as needed.
func Save(path string, p types.StyleProfile) error {
	data, err := Marshal(p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating profile directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	return nil
}

// Load reads a profile written by Save. Fields absent from the file keep
// their zero values.
func Load(path string) (types.StyleProfile, error) {
	var p types.StyleProfile
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("reading profile: %w", err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	return p, nil
}
