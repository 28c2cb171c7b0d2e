package board

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/simonbystrom/commandcenter/internal/task"
)

// Format is the encoding of a board document.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFor picks the format from a file extension. Anything that is not
// .yaml or .yml is read as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// document mirrors the on-disk layout. Unknown keys are ignored by both
// decoders and missing buckets decode as nil.
type document struct {
	Project    Project     `json:"project" yaml:"project"`
	Stats      Stats       `json:"stats" yaml:"stats"`
	Done       []task.Task `json:"done" yaml:"done"`
	Testing    []task.Task `json:"testing" yaml:"testing"`
	InProgress []task.Task `json:"inProgress" yaml:"inProgress"`
	Todo       []task.Task `json:"todo" yaml:"todo"`
}

// Load reads and parses a board document from disk.
func Load(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}
	b, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Parse decodes a board document.
func Parse(data []byte, f Format) (*Board, error) {
	var doc document
	switch f {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse board yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse board json: %w", err)
		}
	}

	return New(doc.Project, doc.Stats, map[Bucket][]task.Task{
		Done:       doc.Done,
		Testing:    doc.Testing,
		InProgress: doc.InProgress,
		Todo:       doc.Todo,
	}), nil
}
