// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads model provider API keys from a directory of
// plain-text files. The filename is the key name and the trimmed file
// contents are the value.
//
// Recognized files: openai-api-key, gemini-api-key, anthropic-api-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/artw-stylekit/internal/logging"
)

// DefaultDir is where the CLI looks for secrets.
const DefaultDir = ".secrets/"

// Key file names.
const (
	OpenAIKey    = "openai-api-key"
	GeminiKey    = "gemini-api-key"
	AnthropicKey = "anthropic-api-key"
)

// Store maps key names to values.
type Store map[string]string

// Get returns the value for name, or "" when it is absent.
func (s Store) Get(name string) string { return s[name] }

// Names returns the loaded key names in sorted order. Values are never
// listed so they stay out of logs.
func (s Store) Names() []string {
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Load reads every regular, non-hidden file in dir. A missing directory
// yields an empty store. Unreadable or empty files are skipped; unreadable
// ones are logged as warnings.
func Load(dir string, log logging.Logger) (Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Store{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	store := make(Store)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warn("could not read secret", "name", name, "error", err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			store[name] = value
		}
	}
	return store, nil
}
