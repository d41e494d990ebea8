package artifact

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/amterp/better-emoji-picker/internal/dataset"
	"github.com/amterp/better-emoji-picker/pkg/interfaces"
)

// Writer serializes the dataset to a single compact JSON file.
type Writer struct {
	path string
}

// NewWriter creates a Writer targeting the given output path. Parent
// directories are created on Write.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Encode renders the dataset as compact JSON. HTML escaping is off so
// non-ASCII glyphs and characters like '&' are stored literally rather
// than as \u escapes, and the encoder's trailing newline is trimmed to
// keep the artifact minimal.
func Encode(emojis []dataset.Emoji) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(emojis); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Write encodes the dataset and writes it to the configured path,
// creating parent directories as needed. Any failure is fatal to the
// build and propagates to the caller.
func (w *Writer) Write(emojis []dataset.Emoji) (interfaces.ArtifactInfo, error) {
	data, err := Encode(emojis)
	if err != nil {
		return interfaces.ArtifactInfo{}, fmt.Errorf("encoding dataset: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return interfaces.ArtifactInfo{}, fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(w.path, data, 0o644); err != nil {
		return interfaces.ArtifactInfo{}, fmt.Errorf("writing %s: %w", w.path, err)
	}

	return interfaces.ArtifactInfo{Path: w.path, Size: len(data)}, nil
}
