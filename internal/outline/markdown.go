// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"fmt"
	"strings"

	"github.com/pdiddy/artw-stylekit/pkg/types"
)

// Defaults used when a section leaves its estimates out.
const (
	DefaultEstimatedWords    = 500
	DefaultRequiredCitations = 2
	DefaultTitle             = "Başlık"
)

// Placeholder bodies for parts of the article not yet written.
const (
	SubsectionPlaceholder = "[Alt bölüm içeriği buraya gelecek]"
	ContentPlaceholder    = "[İçerik buraya gelecek]"
	ReferencesPlaceholder = "[Kaynaklar buraya eklenecek]"
)

// Title returns the outline title or the default heading.
func Title(o *types.Outline) string {
	if o.Title == "" {
		return DefaultTitle
	}
	return o.Title
}

// SectionBody returns the section's content, or a writing brief built from
// its estimates when it has none.
func SectionBody(s types.Section) string {
	if s.Content != "" {
		return s.Content
	}
	words := s.EstimatedWords
	if words == 0 {
		words = DefaultEstimatedWords
	}
	cites := s.RequiredCitations
	if cites == 0 {
		cites = DefaultRequiredCitations
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[Bu bölüm yazılacak. Tahmini: %d kelime]\n\n", words)
	b.WriteString("Ana noktalar:\n")
	for _, p := range s.KeyPoints {
		fmt.Fprintf(&b, "- %s\n", p)
	}
	fmt.Fprintf(&b, "\nMinimum atıf sayısı: %d", cites)
	return b.String()
}

// SubsectionBody returns the subsection's content or the matching placeholder.
func SubsectionBody(s types.Subsection) string {
	switch {
	case s.Bare:
		return SubsectionPlaceholder
	case s.Content != "":
		return s.Content
	default:
		return ContentPlaceholder
	}
}

// Markdown renders o as a Markdown draft with the same structure as the
// exported document.
func Markdown(o *types.Outline) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", Title(o))

	b.WriteString("## Özet\n\n")
	writeAbstract(&b, o.AbstractTR, "Anahtar Kelimeler", o.KeywordsTR)
	b.WriteString("## Abstract\n\n")
	writeAbstract(&b, o.AbstractEN, "Keywords", o.KeywordsEN)

	for _, s := range o.Sections {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", s.Title, SectionBody(s))
		for _, sub := range s.Subsections {
			fmt.Fprintf(&b, "### %s\n\n%s\n\n", sub.Title, SubsectionBody(sub))
		}
	}

	if len(o.RequiredVisuals) > 0 {
		b.WriteString("## Görseller\n\n")
		for _, v := range o.RequiredVisuals {
			fmt.Fprintf(&b, "- Görsel %d. %s", v.Number, v.Description)
			if v.SuggestedSource != "" {
				fmt.Fprintf(&b, " (%s)", v.SuggestedSource)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("## Kaynakça\n\n")
	if len(o.References) == 0 {
		b.WriteString(ReferencesPlaceholder + "\n")
	}
	for _, r := range o.References {
		fmt.Fprintf(&b, "- %s\n", r.Text())
	}
	return b.String()
}

func writeAbstract(b *strings.Builder, text, label string, keywords []string) {
	if text != "" {
		fmt.Fprintf(b, "%s\n\n", text)
	}
	fmt.Fprintf(b, "**%s:** *%s*\n\n", label, strings.Join(keywords, ", "))
}
