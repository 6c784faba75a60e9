//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Pipeline targets run the CLI stages with their default paths. The source
// directory comes from CORPUS_DIR and the topic from ARTW_TOPIC.
type Pipeline mg.Namespace

func artw(args ...string) error {
	return sh.RunV(filepath.Join(binDir, binName), args...)
}

// Ingest extracts the PDFs under CORPUS_DIR into data/corpus.jsonl.
func (Pipeline) Ingest() error {
	mg.Deps(Build)
	return artw("ingest")
}

// Profile computes data/style_profile.json from the corpus.
func (Pipeline) Profile() error {
	mg.Deps(Build)
	return artw("profile")
}

// Outline generates out/outline.json for ARTW_TOPIC.
func (Pipeline) Outline() error {
	mg.Deps(Build)
	topic := os.Getenv("ARTW_TOPIC")
	if topic == "" {
		return fmt.Errorf("set ARTW_TOPIC to the article topic")
	}
	return artw("generate-outline", "--topic", topic)
}

// Export writes out/article_draft.docx and a Markdown copy from the outline.
func (Pipeline) Export() error {
	mg.Deps(Build)
	return artw("export-docx", "--markdown", filepath.Join("out", "article_draft.md"))
}

// All runs every stage in order.
func (p Pipeline) All() {
	mg.SerialDeps(p.Ingest, p.Profile, p.Outline, p.Export)
}
