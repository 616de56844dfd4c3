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

package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azadata/aza-pg/pkg/gen"
	"github.com/azadata/aza-pg/pkg/manifest"
	"github.com/azadata/aza-pg/pkg/provenance"
)

const fixtureManifest = "../manifest/testdata/extensions.manifest.json"

func allArtifactNames() []string {
	return []string{
		ArtifactDockerfile,
		ArtifactEntrypoint,
		ArtifactManifestPGXS,
		ArtifactManifestCargo,
		ArtifactImageContents,
		ArtifactVersionText,
		ArtifactVersionJSON,
		ArtifactChecksums,
	}
}

func TestGenerate(t *testing.T) {
	g := NewGenerator(fixtureManifest, WithToolVersion("v1.0.0"))

	res, err := g.Generate(t.Context())
	require.NoError(t, err)

	for _, name := range allArtifactNames() {
		assert.Contains(t, res.Artifacts, name)
	}
	assert.Len(t, res.Artifacts, len(allArtifactNames()))

	dockerfile := res.Artifacts[ArtifactDockerfile]
	assert.NotContains(t, dockerfile, "{{")
	assert.Contains(t, dockerfile, "FROM docker.io/library/debian@sha256:")
	assert.Contains(t, dockerfile, "postgresql-18-pgvector=")
	assert.Contains(t, dockerfile, "# Code generated by azapg. DO NOT EDIT.")

	entrypoint := res.Artifacts[ArtifactEntrypoint]
	assert.True(t, strings.HasPrefix(entrypoint, "#!/usr/bin/env bash\n"))
	assert.Contains(t, entrypoint, "# Code generated by azapg")
	assert.Contains(t, entrypoint, "shared_preload_libraries")
}

func TestGenerateComprehensiveMode(t *testing.T) {
	g := NewGenerator(fixtureManifest, WithMode(gen.ModeComprehensive))

	res, err := g.Generate(t.Context())
	require.NoError(t, err)

	// Comprehensive installs are install-or-skip, never hard failures.
	assert.Contains(t, res.Artifacts[ArtifactDockerfile], "WARNING: skipped")
	// The disabled-but-flagged entry joins the preload list.
	assert.Contains(t, res.Artifacts[ArtifactEntrypoint], "timescaledb")
}

func TestGenerateSubManifestsAreDisjoint(t *testing.T) {
	g := NewGenerator(fixtureManifest)

	res, err := g.Generate(t.Context())
	require.NoError(t, err)

	var pgxs, cargo manifest.Manifest
	require.NoError(t, json.Unmarshal([]byte(res.Artifacts[ArtifactManifestPGXS]), &pgxs))
	require.NoError(t, json.Unmarshal([]byte(res.Artifacts[ArtifactManifestCargo]), &cargo))

	require.NotEmpty(t, pgxs.Entries)
	require.NotEmpty(t, cargo.Entries)

	seen := map[string]bool{}
	for _, e := range pgxs.Entries {
		seen[e.Name] = true
	}
	for _, e := range cargo.Entries {
		assert.False(t, seen[e.Name], "%s present in both sub-manifests", e.Name)
	}
}

func TestGenerateChecksumsCoverEveryArtifact(t *testing.T) {
	g := NewGenerator(fixtureManifest)

	res, err := g.Generate(t.Context())
	require.NoError(t, err)

	sums := res.Artifacts[ArtifactChecksums]
	lines := strings.Split(strings.TrimSuffix(sums, "\n"), "\n")
	assert.Len(t, lines, len(res.Artifacts)-1)

	for name := range res.Artifacts {
		if name == ArtifactChecksums {
			continue
		}
		assert.Contains(t, sums, "  "+name+"\n")
	}
}

func TestGenerateStableModuloBanner(t *testing.T) {
	g := NewGenerator(fixtureManifest)

	first, err := g.Generate(t.Context())
	require.NoError(t, err)
	second, err := g.Generate(t.Context())
	require.NoError(t, err)

	for name, content := range first.Artifacts {
		assert.Equal(t,
			provenance.Strip(content),
			provenance.Strip(second.Artifacts[name]),
			"artifact %s not stable", name)
	}
}

func TestGenerateVersionJSONHasNoBanner(t *testing.T) {
	g := NewGenerator(fixtureManifest)

	res, err := g.Generate(t.Context())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.Artifacts[ArtifactVersionJSON], "{"))
	assert.True(t, strings.HasPrefix(res.Artifacts[ArtifactManifestPGXS], "{"))
}

func TestGenerateMissingManifest(t *testing.T) {
	g := NewGenerator(filepath.Join(t.TempDir(), "missing.json"))

	_, err := g.Generate(t.Context())
	require.Error(t, err)
}

func TestRunWritesArtifacts(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	g := NewGenerator(fixtureManifest, WithToolVersion("v1.0.0"))

	res, err := g.Run(t.Context(), outDir)
	require.NoError(t, err)

	for name := range res.Artifacts {
		info, err := os.Stat(filepath.Join(outDir, name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size())
	}

	// The entrypoint is executable; everything else is not.
	info, err := os.Stat(filepath.Join(outDir, ArtifactEntrypoint))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o100)
}

func TestLoadTemplatesEmbedded(t *testing.T) {
	templates, err := LoadTemplates("")
	require.NoError(t, err)
	assert.Contains(t, templates[ArtifactDockerfile], "{{BASE_IMAGE}}")
	assert.Contains(t, templates[ArtifactEntrypoint], "{{SHARED_PRELOAD_LIBRARIES}}")
}

func TestLoadTemplatesDirOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "Dockerfile.tmpl"), []byte("FROM {{BASE_IMAGE}}\n"), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "docker-entrypoint.sh.tmpl"), []byte("#!/bin/sh\n"), 0o644))

	templates, err := LoadTemplates(dir)
	require.NoError(t, err)
	assert.Equal(t, "FROM {{BASE_IMAGE}}\n", templates[ArtifactDockerfile])
}

func TestLoadTemplatesMissingDir(t *testing.T) {
	_, err := LoadTemplates(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
