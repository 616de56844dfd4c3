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

package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/azadata/aza-pg/pkg/errors"
	"github.com/azadata/aza-pg/pkg/stats"
)

const fixtureManifest = "../manifest/testdata/extensions.manifest.json"

func run(t *testing.T, args ...string) error {
	t.Helper()
	return Root().Run(t.Context(), append([]string{name}, args...))
}

func TestGenerateAndCheck(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "generated")

	require.NoError(t, run(t, "generate", "-m", fixtureManifest, "-o", outDir))

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)

	// A freshly generated directory has no drift.
	require.NoError(t, run(t, "check", "-m", fixtureManifest, "-o", outDir))
}

func TestCheckDetectsDrift(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "generated")
	require.NoError(t, run(t, "generate", "-m", fixtureManifest, "-o", outDir))

	path := filepath.Join(outDir, "Dockerfile")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, append(data, []byte("RUN true\n")...), 0o644))

	err = run(t, "check", "-m", fixtureManifest, "-o", outDir)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeDriftDetected))
}

func TestGenerateComprehensive(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "generated")

	require.NoError(t, run(t, "generate", "-m", fixtureManifest, "-o", outDir, "--comprehensive"))

	data, err := os.ReadFile(filepath.Join(outDir, "Dockerfile"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "WARNING: skipped")
}

func TestValidate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, run(t, "validate", "-m", fixtureManifest, "--output", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var report ValidationReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.True(t, report.Valid)
	assert.Empty(t, report.Issues)
}

func TestValidateMissingManifest(t *testing.T) {
	err := run(t, "validate", "-m", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotFound))
}

func TestStats(t *testing.T) {
	out := filepath.Join(t.TempDir(), "stats.json")
	require.NoError(t, run(t, "stats", "-m", fixtureManifest, "--output", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var summary stats.Summary
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Positive(t, summary.Entries.Total)
	assert.NotEmpty(t, summary.PreloadDefault)
}

func TestStatsRejectsUnknownFormat(t *testing.T) {
	err := run(t, "stats", "-m", fixtureManifest, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestPublishRejectsBadReference(t *testing.T) {
	err := run(t, "publish",
		"--dir", t.TempDir(),
		"--registry", "ghcr.io",
		"--repository", "Bad Repo!!",
		"--tag", "v1.0.0")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidRequest))
}
