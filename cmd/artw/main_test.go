package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/artw-stylekit/internal/output"
	"github.com/pdiddy/artw-stylekit/internal/prompt"
	"github.com/pdiddy/artw-stylekit/pkg/types"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Giriş", "giriş"},
		{"Sonuç ve Değerlendirme", "sonuç-ve-değerlendirme"},
		{"1. Yöntem: Arşiv", "1-yöntem-arşiv"},
		{"???", "section"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, slug(tt.in))
		})
	}
}

func TestFillSection(t *testing.T) {
	o := &types.Outline{
		Title: "Bizans Mozaikleri",
		Sections: []types.Section{
			{Title: "Giriş", EstimatedWords: 600, KeyPoints: []string{"kapsam"}, RequiredCitations: 4},
		},
	}

	req := prompt.Section{SectionTitle: "giriş", MinCitations: 1}
	require.NoError(t, fillSection(&req, o))
	assert.Equal(t, "Bizans Mozaikleri", req.ArticleTitle)
	assert.Equal(t, 600, req.EstimatedWords)
	assert.Equal(t, []string{"kapsam"}, req.KeyPoints)
	assert.Equal(t, 1, req.MinCitations, "flag value wins over outline")

	missing := prompt.Section{SectionTitle: "Sonuç"}
	assert.Error(t, fillSection(&missing, o))
}

func TestPrintInspect(t *testing.T) {
	var out bytes.Buffer
	pr := output.NewPrinter(&out, &out, false)
	p := types.StyleProfile{
		DocumentCount:         3,
		AverageDocumentLength: 4210.6,
		Vocabulary: types.VocabularyStats{
			UniqueTokens:     12345,
			LexicalDiversity: 0.23456,
			TopWords:         types.TermFrequencies{{Term: "sanat", Count: 40}, {Term: "eser", Count: 31}},
		},
		SentenceStructure: types.SentenceStats{AverageLength: 18.24},
	}

	require.NoError(t, printInspect(pr, p))
	s := out.String()
	assert.Contains(t, s, "Documents: 3")
	assert.Contains(t, s, "Avg doc length: 4211 words")
	assert.Contains(t, s, "Vocabulary size: 12,345")
	assert.Contains(t, s, "Lexical diversity: 0.235")
	assert.Contains(t, s, "Avg sentence: 18.2 words")
	assert.Contains(t, s, "Top 20 Terms")
	assert.Contains(t, s, "sanat")
	assert.Contains(t, s, "40")
	assert.Contains(t, s, "eser")
	assert.Contains(t, s, "31")
}

func TestPrintInspect_LimitsTerms(t *testing.T) {
	var top types.TermFrequencies
	for i := 0; i < inspectTerms+5; i++ {
		top = append(top, types.TermCount{Term: fmt.Sprintf("terim%02d", i), Count: 100 - i})
	}
	var out bytes.Buffer
	pr := output.NewPrinter(&out, &out, false)

	require.NoError(t, printInspect(pr, types.StyleProfile{Vocabulary: types.VocabularyStats{TopWords: top}}))
	s := out.String()
	assert.Contains(t, s, fmt.Sprintf("terim%02d", inspectTerms-1))
	assert.NotContains(t, s, fmt.Sprintf("terim%02d", inspectTerms))
}
