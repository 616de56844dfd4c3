// Copyright (c) 2026, the aza-pg authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Reader deserializes values from an input stream in a detected format.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a Reader over the given stream in the given format.
func NewReader(format Format, input io.Reader) *Reader {
	return &Reader{format: format, input: input}
}

// NewFileReader opens the file at path and creates a Reader over it. The
// format is detected from the file extension; unknown extensions default to
// JSON. Callers must Close the returned Reader.
func NewFileReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	return &Reader{
		format: FormatFromPath(path),
		input:  file,
		closer: file,
	}, nil
}

// FormatFromPath detects the serialization format from a file extension.
// Unknown extensions default to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Deserialize reads the full input stream and unmarshals it into v.
func (r *Reader) Deserialize(v any) error {
	data, err := io.ReadAll(r.input)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	switch r.format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to deserialize YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to deserialize JSON: %w", err)
		}
	}
	return nil
}

// Close closes the underlying file handle if one is held. Safe to call
// multiple times.
func (r *Reader) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// FromFile loads and deserializes a file into a value of type T in one call.
// The format is detected from the file extension. The reader is closed
// internally.
func FromFile[T any](path string) (*T, error) {
	reader, err := NewFileReader(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close() //nolint:errcheck // read-only handle

	out := new(T)
	if err := reader.Deserialize(out); err != nil {
		return nil, err
	}
	return out, nil
}
