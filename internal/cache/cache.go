// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache stores extracted document text in SQLite so that repeated
// ingestion runs skip files that have not changed. An entry is valid while
// the source file keeps the size and modification time recorded with it.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/artw-stylekit/pkg/types"
)

// Cache is a SQLite-backed extraction cache. It is safe for concurrent use.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at path.
func Open(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	// One connection serializes writers from the worker pool.
	db.SetMaxOpenConns(1)

	c := &Cache{db: db}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return c, nil
}

// Close releases the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) createSchema() error {
	_, err := c.db.Exec(`CREATE TABLE IF NOT EXISTS documents (
		path TEXT PRIMARY KEY,
		size INTEGER NOT NULL,
		mod_time TEXT NOT NULL,
		text TEXT NOT NULL,
		filename TEXT,
		pages INTEGER,
		author TEXT,
		title TEXT,
		cached_at TEXT
	)`)
	return err
}

// Stamp identifies one version of a source file.
type Stamp struct {
	Size    int64
	ModTime time.Time
}

// StampOf reads the stamp of the file at path.
func StampOf(path string) (Stamp, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Stamp{}, err
	}
	return Stamp{Size: fi.Size(), ModTime: fi.ModTime()}, nil
}

func (s Stamp) modTime() string {
	return s.ModTime.UTC().Format(time.RFC3339Nano)
}

// Get returns the cached document for path if it was stored with the same
// stamp.
func (c *Cache) Get(ctx context.Context, path string, stamp Stamp) (types.Document, bool, error) {
	var (
		doc           types.Document
		size          int64
		modTime       string
		filename      sql.NullString
		author, title sql.NullString
		pages         sql.NullInt64
	)
	err := c.db.QueryRowContext(ctx,
		`SELECT size, mod_time, text, filename, pages, author, title FROM documents WHERE path = ?`, path,
	).Scan(&size, &modTime, &doc.Text, &filename, &pages, &author, &title)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Document{}, false, nil
	}
	if err != nil {
		return types.Document{}, false, fmt.Errorf("reading cache entry %s: %w", path, err)
	}
	if size != stamp.Size || modTime != stamp.modTime() {
		return types.Document{}, false, nil
	}

	doc.Path = path
	doc.Metadata = types.DocumentMetadata{
		Filename:  filename.String,
		PageCount: int(pages.Int64),
		Author:    author.String,
		Title:     title.String,
	}
	return doc, true, nil
}

// Put stores doc under doc.Path with the given stamp, replacing any
// previous entry.
func (c *Cache) Put(ctx context.Context, doc types.Document, stamp Stamp) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO documents (path, size, mod_time, text, filename, pages, author, title, cached_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		doc.Path, stamp.Size, stamp.modTime(), doc.Text,
		doc.Metadata.Filename, doc.Metadata.PageCount, doc.Metadata.Author, doc.Metadata.Title,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("writing cache entry %s: %w", doc.Path, err)
	}
	return nil
}

// Len returns the number of cached documents.
func (c *Cache) Len(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT count(*) FROM documents`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cache entries: %w", err)
	}
	return n, nil
}
