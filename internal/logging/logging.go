// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging provides the structured logger handed to pipeline
// components. Components depend on the Logger interface; the CLI builds a
// zerolog-backed implementation that writes human-readable lines to the
// terminal and JSON lines to a log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the logging capability components receive at construction.
// keyvals alternate between string keys and values.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

// Config selects log levels and destinations.
type Config struct {
	// Level is the console level: debug, info, warn, or error.
	Level string

	// Console receives human-readable output. Defaults to os.Stderr.
	Console io.Writer

	// File, if set, receives every event at debug level as JSON.
	File string
}

// ZeroLogger implements Logger over zerolog.
type ZeroLogger struct {
	zl   zerolog.Logger
	file *os.File
}

// New builds a logger from cfg. Close releases the log file.
func New(cfg Config) (*ZeroLogger, error) {
	console := cfg.Console
	if console == nil {
		console = os.Stderr
	}

	writers := []io.Writer{
		&zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: zerolog.ConsoleWriter{
				Out:        console,
				TimeFormat: time.TimeOnly,
			}},
			Level: ParseLevel(cfg.Level),
		},
	}

	var file *os.File
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		file = f
		writers = append(writers, f)
	}

	zl := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
	return &ZeroLogger{zl: zl, file: file}, nil
}

// Close closes the log file, if any.
func (l *ZeroLogger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l *ZeroLogger) Debug(msg string, keyvals ...any) { l.zl.Debug().Fields(keyvals).Msg(msg) }
func (l *ZeroLogger) Info(msg string, keyvals ...any)  { l.zl.Info().Fields(keyvals).Msg(msg) }
func (l *ZeroLogger) Warn(msg string, keyvals ...any)  { l.zl.Warn().Fields(keyvals).Msg(msg) }
func (l *ZeroLogger) Error(msg string, keyvals ...any) { l.zl.Error().Fields(keyvals).Msg(msg) }

// ParseLevel maps a level name to a zerolog level. Names are
// case-insensitive; unknown names map to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type nop struct{}

func (nop) Debug(string, ...any) {}
func (nop) Info(string, ...any)  {}
func (nop) Warn(string, ...any)  {}
func (nop) Error(string, ...any) {}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nop{} }
