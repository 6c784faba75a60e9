// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the artw-stylekit pipeline.
// Document records flow from ingestion into the corpus file, the profiler
// reduces them to a StyleProfile, and generation produces an Outline that the
// export stage turns into a formatted document.
package types
