// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TermCount pairs a term with its frequency.
type TermCount struct {
	Term  string `json:"term" yaml:"term"`
	Count int    `json:"count" yaml:"count"`
}

// TermFrequencies is an ordered term-to-frequency mapping. It serializes to a
// JSON object whose keys keep slice order, so ranked lists survive a round
// trip through the profile file.
type TermFrequencies []TermCount

// Top returns up to n leading entries. A negative n returns all entries.
func (t TermFrequencies) Top(n int) TermFrequencies {
	if n < 0 || n > len(t) {
		n = len(t)
	}
	return t[:n]
}

// Terms returns up to n terms in order. A negative n returns all terms.
func (t TermFrequencies) Terms(n int) []string {
	top := t.Top(n)
	out := make([]string, 0, len(top))
	for _, tc := range top {
		out = append(out, tc.Term)
	}
	return out
}

// MarshalJSON writes the frequencies as a JSON object in slice order.
func (t TermFrequencies) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, tc := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(tc.Term)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		fmt.Fprintf(&buf, ":%d", tc.Count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object into frequencies, keeping key order.
func (t *TermFrequencies) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*t = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("term frequencies: expected object, got %v", tok)
	}
	out := TermFrequencies{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("term frequencies: expected string key, got %v", keyTok)
		}
		var count int
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("term frequencies: count for %q: %w", key, err)
		}
		out = append(out, TermCount{Term: key, Count: count})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*t = out
	return nil
}

func marshalNoEscape(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// VocabularyStats summarizes token usage across the corpus.
type VocabularyStats struct {
	// TotalTokens is the number of word tokens across all documents.
	TotalTokens int `json:"total_tokens" yaml:"total_tokens"`

	// UniqueTokens is the number of distinct lowercased tokens.
	UniqueTokens int `json:"unique_tokens" yaml:"unique_tokens"`

	// TopWords holds the 50 most frequent tokens, most frequent first.
	TopWords TermFrequencies `json:"top_50_words" yaml:"top_50_words"`

	// LexicalDiversity is UniqueTokens / TotalTokens, or 0 for an empty corpus.
	LexicalDiversity float64 `json:"lexical_diversity" yaml:"lexical_diversity"`
}

// SentenceStats summarizes sentence lengths in words.
type SentenceStats struct {
	AverageLength float64 `json:"avg_sentence_length" yaml:"avg_sentence_length"`

	// MedianLength is the element at index n/2 of the sorted lengths.
	MedianLength int `json:"median_sentence_length" yaml:"median_sentence_length"`

	Total int `json:"total_sentences" yaml:"total_sentences"`
}

// CitationCounts holds corpus-wide counts of citation patterns.
type CitationCounts struct {
	// InText counts parenthetical (Author, Year) citations.
	InText int `json:"in_text" yaml:"in_text"`

	// EtAl counts "et al." occurrences.
	EtAl int `json:"et_al" yaml:"et_al"`

	// PageRef counts "s. N" page references.
	PageRef int `json:"page_ref" yaml:"page_ref"`
}

// StyleProfile is the aggregate stylistic summary of a corpus. It is a pure
// function of the documents it was computed from.
type StyleProfile struct {
	DocumentCount int `json:"document_count" yaml:"document_count"`

	// AverageDocumentLength is the mean whitespace-separated word count.
	AverageDocumentLength float64 `json:"avg_doc_length" yaml:"avg_doc_length"`

	Vocabulary VocabularyStats `json:"vocabulary" yaml:"vocabulary"`

	SentenceStructure SentenceStats `json:"sentence_structure" yaml:"sentence_structure"`

	Citations CitationCounts `json:"citations" yaml:"citations"`

	// Terminology lists capitalized domain terms seen more than three
	// times, most frequent first.
	Terminology []string `json:"terminology" yaml:"terminology"`
}
