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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name    string   `json:"name" yaml:"name"`
	Count   int      `json:"count" yaml:"count"`
	Tags    []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	private string
}

func TestWriterJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(FormatJSON, buf)

	err := w.Serialize(t.Context(), sample{Name: "pgvector", Count: 2})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"name": "pgvector"`)
	assert.Contains(t, buf.String(), `"count": 2`)
}

func TestWriterYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(FormatYAML, buf)

	err := w.Serialize(t.Context(), sample{Name: "pgvector", Count: 2})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "name: pgvector")
	assert.Contains(t, buf.String(), "count: 2")
}

func TestWriterTable(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(FormatTable, buf)

	err := w.Serialize(t.Context(), sample{Name: "pgvector", Count: 2, Tags: []string{"a", "b"}})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "pgvector")
	assert.Contains(t, out, "Tags.[0]")
	// Unexported fields are not rendered.
	assert.NotContains(t, out, "private")
}

func TestWriterUnknownFormatDefaultsToJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(Format("xml"), buf)

	err := w.Serialize(t.Context(), sample{Name: "x"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "{"))
}

func TestWriterCanceledContext(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(FormatJSON, buf)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := w.Serialize(ctx, sample{Name: "x"})
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestFileWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	w := NewFileWriterOrStdout(FormatJSON, path)
	require.NoError(t, w.Serialize(t.Context(), sample{Name: "pg_cron", Count: 1}))
	require.NoError(t, w.Close())
	require.NoError(t, w.Close()) // idempotent

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "pg_cron")
}

func TestSupportedFormats(t *testing.T) {
	assert.ElementsMatch(t, []string{"json", "yaml", "table"}, SupportedFormats())
}
