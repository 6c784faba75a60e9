// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest turns a directory of PDFs into corpus documents. Files are
// extracted by a bounded worker pool; each file yields a Result, so failures
// are visible to the caller instead of being dropped.
package ingest

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/artw-stylekit/internal/cache"
	"github.com/pdiddy/artw-stylekit/internal/corpus"
	"github.com/pdiddy/artw-stylekit/internal/logging"
	"github.com/pdiddy/artw-stylekit/pkg/types"
)

// DefaultWorkers is the worker count used when none is configured.
const DefaultWorkers = 6

// Extractor reads one source file into a Document. Implementations must be
// safe for concurrent use.
type Extractor interface {
	Extract(path string) (types.Document, error)
}

// ExtractionError reports a file that could not be extracted.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting %s: %v", filepath.Base(e.Path), e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Result is the outcome for one file. Err is nil on success.
type Result struct {
	Path     string
	Document types.Document
	Cached   bool
	Err      error
}

// Summary counts the outcomes of an ingestion run.
type Summary struct {
	Found     int
	Extracted int
	Cached    int
	Failed    int
}

// Processed returns the number of documents written to the corpus.
func (s Summary) Processed() int {
	return s.Extracted + s.Cached
}

// Total returns the number of files attempted.
func (s Summary) Total() int {
	return s.Extracted + s.Cached + s.Failed
}

// HasFailures reports whether any file failed extraction.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Options tunes a run.
type Options struct {
	// Workers bounds concurrent extractions. Zero uses DefaultWorkers.
	Workers int

	// Cache, if set, is consulted before extracting and updated after.
	Cache *cache.Cache

	// Progress, if set, receives a progress bar.
	Progress io.Writer

	Log logging.Logger
}

// Discover returns the PDF files under dir in lexical order. A positive
// sample keeps only the first sample files.
func Discover(dir string, sample int) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".pdf") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	if sample > 0 && len(paths) > sample {
		paths = paths[:sample]
	}
	return paths, nil
}

// Run extracts every path with ex. Results come back in the order of paths,
// regardless of completion order.
func Run(ctx context.Context, ex Extractor, paths []string, opts Options) []Result {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	log := opts.Log
	if log == nil {
		log = logging.Nop()
	}

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(len(paths),
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("Processing PDFs..."),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	results := make([]Result, len(paths))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			results[i] = extractOne(ctx, ex, path, opts.Cache, log)
			if bar != nil {
				bar.Add(1)
			}
			return nil
		})
	}
	g.Wait()
	if bar != nil {
		bar.Finish()
	}
	return results
}

func extractOne(ctx context.Context, ex Extractor, path string, c *cache.Cache, log logging.Logger) Result {
	if err := ctx.Err(); err != nil {
		return Result{Path: path, Err: &ExtractionError{Path: path, Err: err}}
	}

	var (
		stamp   cache.Stamp
		stamped bool
	)
	if c != nil {
		s, err := cache.StampOf(path)
		if err == nil {
			stamp, stamped = s, true
			doc, ok, err := c.Get(ctx, path, stamp)
			if err != nil {
				log.Warn("cache lookup failed", "file", filepath.Base(path), "error", err.Error())
			} else if ok {
				log.Debug("cache hit", "file", filepath.Base(path))
				return Result{Path: path, Document: doc, Cached: true}
			}
		}
	}

	doc, err := ex.Extract(path)
	if err != nil {
		log.Error("failed to process file", "file", filepath.Base(path), "error", err.Error())
		return Result{Path: path, Err: &ExtractionError{Path: path, Err: err}}
	}

	if stamped {
		if err := c.Put(ctx, doc, stamp); err != nil {
			log.Warn("cache update failed", "file", filepath.Base(path), "error", err.Error())
		}
	}
	return Result{Path: path, Document: doc}
}

// Summarize counts results.
func Summarize(results []Result) Summary {
	s := Summary{Found: len(results)}
	for _, r := range results {
		switch {
		case r.Err != nil:
			s.Failed++
		case r.Cached:
			s.Cached++
		default:
			s.Extracted++
		}
	}
	return s
}

// Documents returns the documents of successful results, in order.
func Documents(results []Result) []types.Document {
	docs := make([]types.Document, 0, len(results))
	for _, r := range results {
		if r.Err == nil {
			docs = append(docs, r.Document)
		}
	}
	return docs
}

// Ingest discovers PDFs under cfg.SourceDir, extracts them, and writes the
// successful documents to cfg.OutputPath. Extraction failures are counted
// in the summary; only discovery and write errors are returned.
func Ingest(ctx context.Context, ex Extractor, cfg types.IngestConfig, opts Options) (Summary, []Result, error) {
	log := opts.Log
	if log == nil {
		log = logging.Nop()
	}
	if opts.Workers <= 0 {
		opts.Workers = cfg.Workers
	}

	paths, err := Discover(cfg.SourceDir, cfg.Sample)
	if err != nil {
		return Summary{}, nil, err
	}
	log.Info(fmt.Sprintf("Found %d PDF files", len(paths)), "dir", cfg.SourceDir)

	results := Run(ctx, ex, paths, opts)
	summary := Summarize(results)

	if err := corpus.Save(cfg.OutputPath, Documents(results)); err != nil {
		return summary, results, err
	}
	log.Info(fmt.Sprintf("Successfully processed %d/%d files", summary.Processed(), summary.Found),
		"cached", summary.Cached, "failed", summary.Failed)
	return summary, results, nil
}
