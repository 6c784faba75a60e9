package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/artw-stylekit/internal/cache"
	"github.com/pdiddy/artw-stylekit/internal/ingest"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Extract text from a directory of PDFs into a corpus file",
	Long: `Ingest searches --src recursively for PDF files, extracts their text and
metadata in parallel, and writes one JSON record per document to the corpus
file. Files that fail extraction are reported and skipped.

With the extraction cache enabled (CACHE_ENABLED, default true), unchanged
files reuse the text extracted on a previous run.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().String("src", "", "directory containing PDF files (default: CORPUS_DIR)")
	ingestCmd.Flags().String("out", "", "corpus output file (default data/corpus.jsonl)")
	ingestCmd.Flags().Int("sample", 0, "process only the first N files")
	ingestCmd.Flags().Int("workers", 0, "number of parallel workers (default: MAX_WORKERS)")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	src, _ := cmd.Flags().GetString("src")
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = cfg.CorpusPath()
	}
	sample, _ := cmd.Flags().GetInt("sample")
	workers, _ := cmd.Flags().GetInt("workers")

	icfg := cfg.Ingest(src, out, sample, workers)
	if _, err := os.Stat(icfg.SourceDir); err != nil {
		return fmt.Errorf("source directory: %w", err)
	}

	opts := ingest.Options{
		Workers:  icfg.Workers,
		Progress: os.Stderr,
		Log:      logger,
	}
	if icfg.CacheEnabled {
		c, err := cache.Open(icfg.CachePath)
		if err != nil {
			return err
		}
		defer c.Close()
		opts.Cache = c
	}

	printer.Info("Ingesting PDFs from: %s", icfg.SourceDir)
	summary, results, err := ingest.Ingest(cmd.Context(), ingest.FitzExtractor{}, icfg, opts)
	if err != nil {
		return err
	}

	for _, r := range results {
		if r.Err != nil {
			printer.Warning("%v", r.Err)
		}
	}
	printer.Success("Ingested %d documents to %s", summary.Processed(), icfg.OutputPath)
	printer.Detail("Found", summary.Found)
	printer.Detail("Extracted", summary.Extracted)
	printer.Detail("Cached", summary.Cached)
	printer.Detail("Failed", summary.Failed)
	return nil
}
