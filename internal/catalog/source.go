// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// # Data Source Contract

// Source retrieves the raw record collection.
//
// Entries are not validated: missing fields simply decode to empty strings.
type Source interface {
	// Name identifies the source in logs ("file", "http", ...).
	Name() string

	// Load performs one load attempt.
	Load(ctx context.Context) ([]Record, error)
}

// LoadError reports a failed load attempt. It is terminal for that attempt.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("catalog: load from %s failed: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// # Payload Decoding

// Format is the encoding of a raw catalog payload.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath guesses the payload format from a file extension. Anything
// that is not YAML is read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// DecodeRecords parses a payload holding a list of records.
func DecodeRecords(data []byte, format Format) ([]Record, error) {
	var records []Record

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("decoding yaml records: %w", err)
		}
	default:
		decoder := json.NewDecoder(bytes.NewReader(data))
		if err := decoder.Decode(&records); err != nil {
			return nil, fmt.Errorf("decoding json records: %w", err)
		}
	}

	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// # File Source

// FileSource reads the catalog from a JSON or YAML file on disk.
type FileSource struct {
	Path string
}

// NewFileSource constructs a [FileSource] for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Name implements [Source].
func (source *FileSource) Name() string { return "file" }

// Load implements [Source].
func (source *FileSource) Load(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(source.Path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source.Path, err)
	}

	return DecodeRecords(data, FormatFromPath(source.Path))
}
