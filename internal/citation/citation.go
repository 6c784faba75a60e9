// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citation checks APA-7 conventions in article text: in-text
// author-year citations, et al. usage, figure captions, and DOI
// reachability. It works on raw text and does not depend on a style profile.
package citation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// NoCaptionsIssue is reported when text has no figure captions at all.
const NoCaptionsIssue = "No visual captions found (expected: Görsel 1. ...)"

var (
	inTextPattern = regexp.MustCompile(
		`\(([A-ZÇĞİÖŞÜ][a-zçğıöşü]+(?:\s+(?:ve|and|&)\s+[A-ZÇĞİÖŞÜ][a-zçğıöşü]+)?),\s*(\d{4})(?:,\s*s\.\s*(\d+(?:-\d+)?))?\)`)

	etAlCitationPattern = regexp.MustCompile(`\([A-ZÇĞİÖŞÜ][a-zçğıöşü]+\s+et\s+al\.,\s*\d{4}\)`)

	captionPattern     = regexp.MustCompile(`Görsel\s+(\d+)\.\s+[A-ZÇĞİÖŞÜ]`)
	captionLinePattern = regexp.MustCompile(`^Görsel\s*\d+\s*[.:]`)
	wellFormedCaption  = regexp.MustCompile(`^Görsel\s+\d+\.\s+[A-ZÇĞİÖŞÜ]`)

	doiPattern = regexp.MustCompile(`(?i)10\.\d{4,9}/[-._;()/:A-Z0-9]+`)
)

// InText is one parenthetical author-year citation.
type InText struct {
	Author string `json:"author"`
	Year   string `json:"year"`
	Page   string `json:"page,omitempty"`
}

func (c InText) String() string {
	if c.Page != "" {
		return fmt.Sprintf("(%s, %s, s. %s)", c.Author, c.Year, c.Page)
	}
	return fmt.Sprintf("(%s, %s)", c.Author, c.Year)
}

// Report aggregates everything Check found in a text.
type Report struct {
	Citations []InText `json:"citations"`
	DOIs      []string `json:"dois"`
	Issues    []string `json:"issues"`
}

// HasIssues reports whether any issue was found.
func (r Report) HasIssues() bool { return len(r.Issues) > 0 }

// ExtractInText returns the in-text citations in text, in order of
// appearance.
func ExtractInText(text string) []InText {
	var out []InText
	for _, m := range inTextPattern.FindAllStringSubmatch(text, -1) {
		out = append(out, InText{Author: m[1], Year: m[2], Page: m[3]})
	}
	return out
}

// ExtractDOIs returns the DOIs mentioned in text, deduplicated, in order of
// first appearance. Trailing sentence punctuation is not part of a DOI.
func ExtractDOIs(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range doiPattern.FindAllString(text, -1) {
		doi := strings.TrimRight(m, ".;:,")
		if doi == "" || seen[doi] {
			continue
		}
		seen[doi] = true
		out = append(out, doi)
	}
	return out
}

// CheckEtAl reports each (Author et al., Year) citation. APA-7 allows the
// short form only for works with three or more authors, so each use is
// listed for the writer to confirm.
func CheckEtAl(text string) []string {
	var issues []string
	for _, m := range etAlCitationPattern.FindAllString(text, -1) {
		issues = append(issues, fmt.Sprintf("et al. citation %s: confirm the work has three or more authors", m))
	}
	return issues
}

// CheckCaptions validates figure captions of the form
// "Görsel <n>. <Capitalized text>". It reports a text without any caption,
// caption lines that do not follow the form, and numbering that does not
// run 1, 2, 3 in order.
func CheckCaptions(text string) []string {
	var issues []string
	if !captionPattern.MatchString(text) {
		issues = append(issues, NoCaptionsIssue)
	}

	expected := 1
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !captionLinePattern.MatchString(line) {
			continue
		}
		m := wellFormedCaption.FindString(line)
		if m == "" {
			issues = append(issues, fmt.Sprintf("line %d: malformed caption %q (expected: Görsel %d. Sanatçı, Eser Adı, Yıl, Teknik, Kaynak.)", i+1, truncate(line, 60), expected))
			expected++
			continue
		}
		n, _ := strconv.Atoi(captionPattern.FindStringSubmatch(m)[1])
		if n != expected {
			issues = append(issues, fmt.Sprintf("line %d: caption numbered Görsel %d, expected Görsel %d", i+1, n, expected))
		}
		expected = n + 1
	}
	return issues
}

// Check runs all text checks. DOIs are collected but not resolved; use
// DOIChecker for that.
func Check(text string) Report {
	r := Report{
		Citations: ExtractInText(text),
		DOIs:      ExtractDOIs(text),
	}
	r.Issues = append(r.Issues, CheckEtAl(text)...)
	r.Issues = append(r.Issues, CheckCaptions(text)...)
	return r
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
